// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is the light client sync daemon lifecycle.
type Client interface {
	// Run syncs until SIGINT or SIGTERM.
	Run() error

	// RunContext syncs until ctx is cancelled and closes the local store.
	RunContext(ctx context.Context) error
}
