// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the configured command and returns when it is done.
	Run(ctx context.Context) error
}

// PasswordSource supplies master passwords.
type PasswordSource interface {
	// MasterPassword returns the password that opens the safe. With confirm
	// set an interactive source asks for it twice.
	MasterPassword(ctx context.Context, confirm bool) (string, error)

	// NewMasterPassword returns the replacement password for "passwd".
	NewMasterPassword(ctx context.Context) (string, error)
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}
