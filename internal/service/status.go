package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-sync/models"
)

const msgAutoSyncDisabled = "auto sync disabled due to repeated failures"

// statusTracker owns the live [models.SyncStatus]. Every method holds the
// lock only for the field updates, never across a sync.
type statusTracker struct {
	mu           sync.Mutex
	status       models.SyncStatus
	circuitOpen  bool
	lastTransfer time.Time
}

func newStatusTracker() *statusTracker {
	return &statusTracker{}
}

// Snapshot returns a deep copy of the status.
func (t *statusTracker) Snapshot() models.SyncStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.status
	s.LastSync = copyPtr(s.LastSync)
	s.ErrorMessage = copyPtr(s.ErrorMessage)
	s.ErrorType = copyPtr(s.ErrorType)
	s.LastErrorTime = copyPtr(s.LastErrorTime)
	return s
}

// TryBegin sets sync_in_progress. It returns false when a sync is already
// running.
func (t *statusTracker) TryBegin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status.SyncInProgress {
		return false
	}
	t.status.SyncInProgress = true
	return true
}

// Abort clears sync_in_progress without touching anything else.
func (t *statusTracker) Abort() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.SyncInProgress = false
}

// Succeed records a completed sync and resets the failure state.
func (t *statusTracker) Succeed(at time.Time, result models.CycleResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.SyncInProgress = false
	t.status.LastSync = &at
	t.status.ErrorMessage = nil
	t.status.ErrorType = nil
	t.status.LastErrorTime = nil
	t.status.RetryCount = 0
	t.status.RemoteAvailable = !result.Degraded

	if result.Push == models.Pushed || result.Pull == models.Pulled {
		t.lastTransfer = at
	}
}

// Fail records err and increments retry_count. When countsTowardBreaker is
// set and retry_count reaches threshold, auto sync is disabled and true is
// returned. The message of the failure that tripped the breaker is kept.
func (t *statusTracker) Fail(at time.Time, err error, result models.CycleResult, countsTowardBreaker bool, threshold uint32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := err.Error()
	errType := ErrorTypeOf(err)

	t.status.SyncInProgress = false
	t.status.RetryCount++
	t.status.LastErrorTime = &at
	if result.Degraded || isUnavailable(err) {
		t.status.RemoteAvailable = false
	}

	tripped := false
	if countsTowardBreaker && threshold > 0 && t.status.RetryCount >= threshold {
		msg = fmt.Sprintf("%s: %s", msgAutoSyncDisabled, msg)
		errType = models.ErrorTypeCircuitOpen
		t.status.IsEnabled = false
		t.circuitOpen = true
		tripped = true
	}

	t.status.ErrorMessage = &msg
	t.status.ErrorType = &errType
	return tripped
}

func (t *statusTracker) SetRemoteAvailable(available bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.RemoteAvailable = available
}

// SetEnabled updates is_enabled. While the breaker is open only an explicit
// re-enable (see Reset) can turn auto sync back on.
func (t *statusTracker) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if enabled && t.circuitOpen {
		return
	}
	t.status.IsEnabled = enabled
}

// Reset closes the breaker, clears retry_count and sets is_enabled.
func (t *statusTracker) Reset(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.circuitOpen = false
	t.status.RetryCount = 0
	t.status.IsEnabled = enabled
}

func (t *statusTracker) CircuitOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.circuitOpen
}

// LastTransfer is the time of the last successful sync that moved data.
func (t *statusTracker) LastTransfer() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastTransfer
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
