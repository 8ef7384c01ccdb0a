// Package server runs the daemon's loopback control API.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
