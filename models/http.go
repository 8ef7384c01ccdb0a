package models

// ErrorCode identifies a control API failure the caller can act on without
// parsing the message.
type ErrorCode string

const (
	CodeSyncInProgress         ErrorCode = "sync_in_progress"
	CodeRemoteUnavailable      ErrorCode = "remote_unavailable"
	CodeNoRemoteData           ErrorCode = "no_remote_data"
	CodeLocalIsNewer           ErrorCode = "local_is_newer"
	CodeInvalidSyncInterval    ErrorCode = "invalid_sync_interval"
	CodeBackupNotFound         ErrorCode = "backup_not_found"
	CodeInvalidBackupTimestamp ErrorCode = "invalid_backup_timestamp"
	CodeInvalidRequest         ErrorCode = "invalid_request"
	CodeInternal               ErrorCode = "internal"
)

// ErrorResponse is the JSON body of every failed control API call.
type ErrorResponse struct {
	// Error is the human-readable message.
	Error string `json:"error"`

	// Code is set for failures with a dedicated meaning.
	Code ErrorCode `json:"code,omitempty"`

	// ErrorType is the sync status tag of the failure, when it is a sync
	// failure.
	ErrorType ErrorType `json:"error_type,omitempty"`
}
