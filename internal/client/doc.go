// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the MoviSimple terminal client: it starts the
// background workers, shows the UI and stops everything when the user quits
// or the process is signalled.
package client
