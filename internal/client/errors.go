package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/app"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
)

var errMessages = []struct {
	target error
	msg    string
}{
	{adapter.ErrDaemonUnavailable, app.MsgDaemonUnavailable},
	{service.ErrSyncInProgress, app.MsgSyncInProgress},
	{service.ErrInvalidSyncInterval, app.MsgInvalidSyncInterval},
	{service.ErrBackupNotFound, app.MsgBackupNotFound},
	{service.ErrInvalidBackupTimestamp, app.MsgInvalidBackupTimestamp},
	{service.ErrRemoteUnavailable, app.MsgRemoteUnavailable},
}

// explain wraps err with the user-facing message for it. The daemon's own
// text is kept after the colon.
func explain(err error) error {
	for _, m := range errMessages {
		if errors.Is(err, m.target) {
			return fmt.Errorf("%s: %w", m.msg, err)
		}
	}
	return fmt.Errorf("%s: %w", app.MsgSyncFailed, err)
}

// controlOutcome returns the message for a skipped pull, or "" when err is
// a real failure.
func controlOutcome(err error) string {
	switch {
	case errors.Is(err, service.ErrNoRemoteData):
		return app.MsgNoRemoteData
	case errors.Is(err, service.ErrLocalIsNewer):
		return app.MsgLocalIsNewer
	}
	return ""
}
