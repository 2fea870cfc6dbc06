package dictionary

import "errors"

var (
	// ErrResourceMissing is returned by Load when a required word resource is
	// missing or unreadable. It signals a packaging problem and is not retried.
	ErrResourceMissing = errors.New("word dictionary resource missing")

	// ErrFetchFailed is returned by Fetch when the archive cannot be
	// downloaded or decoded.
	ErrFetchFailed = errors.New("word dictionary download failed")
)
