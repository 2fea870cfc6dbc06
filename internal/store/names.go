package store

import (
	"fmt"
	"regexp"
)

var safeNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// validateSafeName rejects names that are empty, too long or unusable as a
// file name.
func validateSafeName(name string) error {
	if !safeNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidSafeName, name)
	}
	return nil
}
