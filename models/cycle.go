// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PullOutcome is the state reached by the pull step of a sync cycle.
type PullOutcome string

const (
	PullSkipped PullOutcome = "skipped"
	Pulled      PullOutcome = "pulled"
	PullNoOp    PullOutcome = "no_op"
	PullFailed  PullOutcome = "pull_failed"
)

// PushOutcome is the state reached by the push step of a sync cycle.
type PushOutcome string

const (
	Pushed      PushOutcome = "pushed"
	SkippedPush PushOutcome = "skipped_push"
	PushFailed  PushOutcome = "push_failed"
)

// CycleResult describes what one engine run did.
type CycleResult struct {
	Pull PullOutcome `json:"pull"`
	Push PushOutcome `json:"push"`

	// Tier is the target the push went to (or would have gone to).
	Tier Tier `json:"tier"`

	// Degraded is true when the shared folder was unreachable and the
	// local-only tier was used instead.
	Degraded bool `json:"degraded"`

	// PullError keeps a recovered pull failure for diagnostics.
	PullError string `json:"pull_error,omitempty"`
}
