// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// daemon invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the package's
// ErrInvalid* errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DataDir == "" || cfg.Storage.DBFileName == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.Root == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.TickPeriod <= 0 || cfg.Workers.FailureThreshold == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
