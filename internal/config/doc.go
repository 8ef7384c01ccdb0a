// Package config provides configuration loading, merging, and validation
// facilities for the ledger sync daemon and its control CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (per-user data directory, shared-folder root)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the daemon and
// [GetClientConfig] for the control CLI.
package config
