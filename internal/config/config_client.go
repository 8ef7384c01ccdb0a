package config

import (
	"time"
)

// ClientAdapter holds network settings used by the control CLI.
type ClientAdapter struct {
	// HTTPAddress is the control API endpoint address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientConfig is the control CLI configuration.
type ClientConfig struct {
	// Adapter contains the control API address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the control CLI config. Empty
// arguments fall back to the ADAPTER_* environment variables and then to the
// built-in defaults.
func GetClientConfig(address string, timeout time.Duration) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		merged()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
	if address != "" {
		clientCfg.Adapter.HTTPAddress = address
	}
	if timeout > 0 {
		clientCfg.Adapter.RequestTimeout = timeout
	}

	return clientCfg, clientCfg.validate()
}
