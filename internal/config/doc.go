// Package config provides configuration loading, merging, and validation
// facilities for smallsafe.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields no source sets get defaults (100,000 PBKDF2 iterations, minimum
// passphrase length 12, digits and punctuation allowed, safe "default",
// files under the user config directory). The entry point is
// [GetStructuredConfig].
package config
