package adapter

import "errors"

var (
	ErrDaemonUnavailable  = errors.New("sync daemon is not reachable")
	ErrUnexpectedResponse = errors.New("unexpected response from sync daemon")
)
