// Package http implements the loopback control API of the sync daemon.
//
// It wires chi routes to the sync manager and the backup service, maps
// service errors to status codes and machine-readable error codes, and adds
// request tracing and access logging in front of every handler.
package http
