// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract the terminal client satisfies. Run owns
// the whole session, from storage and worker startup through the TUI event
// loop, and blocks until the user exits.
type Client interface {
	Run() error
}
