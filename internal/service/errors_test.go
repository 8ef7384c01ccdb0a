package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func TestSyncFailedError_Message(t *testing.T) {
	err := &SyncFailedError{Remote: errors.New("disk full"), Local: errors.New("permission denied")}

	assert.Equal(t, "Both remote and local sync failed. Remote: disk full, Local: permission denied", err.Error())
}

func TestSyncFailedError_Unwrap(t *testing.T) {
	remote := fmt.Errorf("%w: /mnt/share", ErrRemoteUnavailable)
	local := fmt.Errorf("%w: read-only", ErrFileSystem)

	var err error = &SyncFailedError{Remote: remote, Local: local}

	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.ErrorIs(t, err, ErrFileSystem)
}

func TestErrorTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.ErrorType
	}{
		{name: "unavailable", err: fmt.Errorf("%w: root", ErrRemoteUnavailable), want: models.ErrorTypeRemoteUnavailable},
		{name: "file system", err: fmt.Errorf("%w: copy", ErrFileSystem), want: models.ErrorTypeFileSystem},
		{name: "schema", err: fmt.Errorf("%w: %w", ErrDatabase, ErrSchemaVerificationFailed), want: models.ErrorTypeDatabase},
		{name: "missing tables", err: store.ErrMissingTables, want: models.ErrorTypeDatabase},
		{name: "configuration", err: ErrConfiguration, want: models.ErrorTypeConfiguration},
		{name: "timeout", err: ErrTimeout, want: models.ErrorTypeTimeout},
		{name: "both tiers", err: &SyncFailedError{Remote: ErrRemoteUnavailable, Local: ErrFileSystem}, want: models.ErrorTypeSyncFailed},
		{name: "unknown", err: errors.New("boom"), want: models.ErrorTypeSyncFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorTypeOf(tt.err))
		})
	}
}

func TestIsControlOutcome(t *testing.T) {
	assert.True(t, IsControlOutcome(ErrNoRemoteData))
	assert.True(t, IsControlOutcome(fmt.Errorf("wrapped: %w", ErrLocalIsNewer)))
	assert.True(t, IsControlOutcome(ErrRemoteIsNewer))
	assert.False(t, IsControlOutcome(ErrFileSystem))
	assert.False(t, IsControlOutcome(nil))
}
