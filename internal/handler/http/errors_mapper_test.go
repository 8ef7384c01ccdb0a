package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"in progress", service.ErrSyncInProgress, http.StatusConflict},
		{"wrapped unavailable", fmt.Errorf("probe: %w", service.ErrRemoteUnavailable), http.StatusServiceUnavailable},
		{"no remote data", service.ErrNoRemoteData, http.StatusNotFound},
		{"local is newer", service.ErrLocalIsNewer, http.StatusConflict},
		{"configuration", fmt.Errorf("%w: bad root", service.ErrConfiguration), http.StatusBadRequest},
		{"database", fmt.Errorf("%w: %w", service.ErrDatabase, store.ErrMissingTables), http.StatusUnprocessableEntity},
		{"backup not found", service.ErrBackupNotFound, http.StatusNotFound},
		{"bad timestamp", service.ErrInvalidBackupTimestamp, http.StatusBadRequest},
		{"invalid json", errInvalidJSON, http.StatusBadRequest},
		{"file system", service.ErrFileSystem, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{
			"double failure wraps unavailable",
			&service.SyncFailedError{Remote: service.ErrRemoteUnavailable, Local: errors.New("disk full")},
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.ErrorResponse
	}{
		{
			name: "control outcome has no error type",
			err:  service.ErrLocalIsNewer,
			want: models.ErrorResponse{Error: service.ErrLocalIsNewer.Error(), Code: models.CodeLocalIsNewer},
		},
		{
			name: "busy has no error type",
			err:  service.ErrSyncInProgress,
			want: models.ErrorResponse{Error: service.ErrSyncInProgress.Error(), Code: models.CodeSyncInProgress},
		},
		{
			name: "sync error keeps its type",
			err:  fmt.Errorf("%w: %w", service.ErrConfiguration, service.ErrInvalidSyncInterval),
			want: models.ErrorResponse{
				Error:     "configuration error: sync interval must be at least 1 minute",
				Code:      models.CodeInvalidSyncInterval,
				ErrorType: models.ErrorTypeConfiguration,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorResponse(tt.err))
		})
	}
}
