package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// errorStatusMap lists errors with a dedicated status. Entries that one error
// can wrap together share a status.
var errorStatusMap = map[error]int{
	service.ErrSyncInProgress:           http.StatusConflict,
	service.ErrRemoteUnavailable:        http.StatusServiceUnavailable,
	service.ErrNoRemoteData:             http.StatusNotFound,
	service.ErrLocalIsNewer:             http.StatusConflict,
	service.ErrConfiguration:            http.StatusBadRequest,
	service.ErrInvalidSyncInterval:      http.StatusBadRequest,
	service.ErrDatabase:                 http.StatusUnprocessableEntity,
	service.ErrSchemaVerificationFailed: http.StatusUnprocessableEntity,
	service.ErrBackupNotFound:           http.StatusNotFound,
	service.ErrInvalidBackupTimestamp:   http.StatusBadRequest,
	errInvalidJSON:                      http.StatusBadRequest,
}

var errorCodeMap = map[error]models.ErrorCode{
	service.ErrSyncInProgress:         models.CodeSyncInProgress,
	service.ErrRemoteUnavailable:      models.CodeRemoteUnavailable,
	service.ErrNoRemoteData:           models.CodeNoRemoteData,
	service.ErrLocalIsNewer:           models.CodeLocalIsNewer,
	service.ErrInvalidSyncInterval:    models.CodeInvalidSyncInterval,
	service.ErrBackupNotFound:         models.CodeBackupNotFound,
	service.ErrInvalidBackupTimestamp: models.CodeInvalidBackupTimestamp,
	errInvalidJSON:                    models.CodeInvalidRequest,
}

func statusFromError(err error) int {
	// a double push failure may wrap ErrRemoteUnavailable, but the local
	// tier failed too
	var syncFailed *service.SyncFailedError
	if errors.As(err, &syncFailed) {
		return http.StatusInternalServerError
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func codeFromError(err error) models.ErrorCode {
	var syncFailed *service.SyncFailedError
	if errors.As(err, &syncFailed) {
		return models.CodeInternal
	}

	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return models.CodeInternal
}

// errorResponse builds the body for err. Control outcomes and argument
// errors carry no sync error type.
func errorResponse(err error) models.ErrorResponse {
	resp := models.ErrorResponse{
		Error: err.Error(),
		Code:  codeFromError(err),
	}

	switch {
	case service.IsControlOutcome(err),
		errors.Is(err, service.ErrSyncInProgress),
		errors.Is(err, service.ErrBackupNotFound),
		errors.Is(err, service.ErrInvalidBackupTimestamp),
		errors.Is(err, errInvalidJSON):
	default:
		resp.ErrorType = service.ErrorTypeOf(err)
	}

	return resp
}

// writeError logs err on the request logger and writes the JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteError(w, errorResponse(err), status)
}
