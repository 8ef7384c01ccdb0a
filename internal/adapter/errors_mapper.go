package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/models"
)

var codeErrors = map[models.ErrorCode]error{
	models.CodeSyncInProgress:         service.ErrSyncInProgress,
	models.CodeRemoteUnavailable:      service.ErrRemoteUnavailable,
	models.CodeNoRemoteData:           service.ErrNoRemoteData,
	models.CodeLocalIsNewer:           service.ErrLocalIsNewer,
	models.CodeInvalidSyncInterval:    service.ErrInvalidSyncInterval,
	models.CodeBackupNotFound:         service.ErrBackupNotFound,
	models.CodeInvalidBackupTimestamp: service.ErrInvalidBackupTimestamp,
}

var errorTypeErrors = map[models.ErrorType]error{
	models.ErrorTypeRemoteUnavailable: service.ErrRemoteUnavailable,
	models.ErrorTypeFileSystem:        service.ErrFileSystem,
	models.ErrorTypeDatabase:          service.ErrDatabase,
	models.ErrorTypeConfiguration:     service.ErrConfiguration,
	models.ErrorTypeTimeout:           service.ErrTimeout,
}

// mapHTTPError turns a non-2xx response into an error wrapping the matching
// service sentinel. The daemon's message is kept as the error text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Error == "" {
		text := strings.TrimSpace(string(resp.Body()))
		if text == "" {
			text = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), text)
	}

	if sentinel, ok := codeErrors[body.Code]; ok {
		return wrapRemote(sentinel, body.Error)
	}
	if sentinel, ok := errorTypeErrors[body.ErrorType]; ok {
		return wrapRemote(sentinel, body.Error)
	}

	return errors.New(body.Error)
}

// wrapRemote keeps msg as the text when it already starts with the
// sentinel's own message.
func wrapRemote(sentinel error, msg string) error {
	if msg == sentinel.Error() {
		return sentinel
	}
	return &remoteError{sentinel: sentinel, msg: msg}
}

type remoteError struct {
	sentinel error
	msg      string
}

func (e *remoteError) Error() string { return e.msg }

func (e *remoteError) Unwrap() error { return e.sentinel }
