package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the daemon flags from args (without the program name).
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-data-dir per-user data directory
//	-db ledger database file name
//	-remote-root shared-folder root
//	-platform clock-skew platform ("windows", "linux", "darwin")
//	-tick scheduler tick period (e.g., "60s")
//	-failure-threshold consecutive failures before auto sync disables itself
//	-log-file rotating log file path
//	-log-level log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var dataDir, dbFile, remoteRoot, platform string
	var tick time.Duration
	var failureThreshold uint
	var logFile, logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("ledgersyncd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&dataDir, "data-dir", "", "Per-user data directory")
	fs.StringVar(&dbFile, "db", "", "Ledger database file name")
	fs.StringVar(&remoteRoot, "remote-root", "", "Shared-folder root")
	fs.StringVar(&platform, "platform", "", "Clock-skew platform")
	fs.DurationVar(&tick, "tick", 0, "Scheduler tick period (e.g., 60s)")
	fs.UintVar(&failureThreshold, "failure-threshold", 0, "Failures before auto sync disables itself")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DataDir:    dataDir,
			DBFileName: dbFile,
		},
		Remote: Remote{
			Root:     remoteRoot,
			Platform: platform,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			TickPeriod:       tick,
			FailureThreshold: uint32(failureThreshold),
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
