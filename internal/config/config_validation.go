// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged [StructuredConfig] is internally
// consistent. Requirements that depend on the runtime are checked by the
// client and server views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.QueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	switch cfg.Adapter.Transport {
	case "", TransportHTTP, TransportWebSocket:
	default:
		return ErrUnsupportedTransport
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.Address == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Transport != TransportHTTP && cfg.Adapter.Transport != TransportWebSocket {
		return ErrUnsupportedTransport
	}

	if cfg.Workers.QueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.LogFile == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
