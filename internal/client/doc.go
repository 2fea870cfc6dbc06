// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the smallsafe command line runtime.
//
// One invocation runs one command against one safe: the command name and
// its arguments come from the positional arguments left after global flag
// parsing. Groups and entries are addressed by id or by name.
package client
