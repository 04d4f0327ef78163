// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client application.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by the client.
type UI interface {
	// Run blocks until the user leaves the UI or ctx is cancelled.
	Run(ctx context.Context) error
}

// BackgroundWorkers are started before the UI and stopped after it.
type BackgroundWorkers interface {
	Start(ctx context.Context)
	Stop()
}
