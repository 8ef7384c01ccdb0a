// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements ledgersyncctl, the command line front end of the
// sync daemon.
//
// Every command is one call on the daemon's control API through
// adapter.DaemonAdapter. Results are rendered with lipgloss; errors are
// translated into the short messages of package app.
package client
