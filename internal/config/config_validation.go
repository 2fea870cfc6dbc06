// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultIterations matches the PBKDF2 iteration count of the cipher.
	DefaultIterations = 100_000
	// MinIterations is the lowest accepted iteration count.
	MinIterations = 10_000

	DefaultMinimumLength = 12
	DefaultDriver        = "sqlite3"
	DefaultSafeName      = "default"

	appDirName = "smallsafe"
)

var knownDrivers = map[string]bool{"sqlite3": true, "pgx": true}

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// applyDefaults fills every field that no source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Crypto.Iterations == 0 {
		cfg.Crypto.Iterations = DefaultIterations
	}

	if cfg.Generator.MinimumLength == 0 {
		cfg.Generator.MinimumLength = DefaultMinimumLength
	}
	if cfg.Generator.AllowNumbers == nil {
		cfg.Generator.AllowNumbers = boolPtr(true)
	}
	if cfg.Generator.AllowPunctuation == nil {
		cfg.Generator.AllowPunctuation = boolPtr(true)
	}

	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}

	if cfg.Safe.Name == "" {
		cfg.Safe.Name = DefaultSafeName
	}

	base, err := userConfigDir()
	if err != nil {
		return
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.SafeDir == "" {
		cfg.Storage.Files.SafeDir = filepath.Join(base, appDirName, "safes")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(base, appDirName, "smallsafe.log")
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.Iterations < MinIterations {
		return fmt.Errorf("%w: iterations %d below %d", ErrInvalidCryptoConfigs, cfg.Crypto.Iterations, MinIterations)
	}

	g := cfg.Generator
	if g.MinimumLength < 0 || g.MaximumLength < 0 {
		return fmt.Errorf("%w: negative length", ErrInvalidGeneratorConfigs)
	}
	if g.MaximumLength > 0 && g.MinimumLength > g.MaximumLength {
		return fmt.Errorf("%w: minimum %d above maximum %d", ErrInvalidGeneratorConfigs, g.MinimumLength, g.MaximumLength)
	}

	if cfg.Storage.DB.DSN != "" && !knownDrivers[cfg.Storage.DB.Driver] {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.SafeDir == "" {
		return fmt.Errorf("%w: neither a database nor a safe directory is configured", ErrInvalidStorageConfigs)
	}

	if cfg.Safe.Name == "" {
		return ErrInvalidSafeConfigs
	}

	if cfg.Clipboard.ClearAfter < 0 {
		return ErrInvalidClipboardConfigs
	}

	return nil
}

func boolPtr(v bool) *bool { return &v }
