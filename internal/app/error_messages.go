// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of ledgersyncctl.
//
// All Msg* constants are printed to the terminal to describe the outcome of
// a command. Keeping them in one place keeps the wording consistent across
// commands.
package app

const (
	// MsgDaemonUnavailable is printed when the control API cannot be reached.
	MsgDaemonUnavailable = "sync daemon is not running or not reachable"

	// MsgSyncInProgress is printed when the daemon refuses an operation
	// because a sync is already running.
	MsgSyncInProgress = "another sync is running, try again in a moment"

	// MsgRemoteUnavailable is printed when the shared folder cannot be
	// written and no fallback applies.
	MsgRemoteUnavailable = "shared folder is not reachable"

	// MsgNoRemoteData is printed when a pull finds no published ledger.
	MsgNoRemoteData = "no ledger has been published to the shared folder yet"

	// MsgLocalIsNewer is printed when a pull is skipped because the local
	// ledger is at least as new as the shared one.
	MsgLocalIsNewer = "local ledger is up to date, nothing was pulled"

	MsgInvalidSyncInterval    = "sync interval must be at least 1 minute"
	MsgBackupNotFound         = "no backup with this timestamp"
	MsgInvalidBackupTimestamp = "backup timestamp must look like YYYYMMDD_HHMMSS"

	// MsgSyncFailed prefixes any other failure reported by the daemon.
	MsgSyncFailed = "sync failed"

	MsgNothingToChange = "no config flags given, nothing to change"
	MsgChangeReported  = "change reported to the sync daemon"
	MsgBackupRestored  = "backup restored"
	MsgBackupDeleted   = "backup deleted"
	MsgNoBackups       = "no backups yet"
)
