package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrUnsupportedTransport indicates an adapter transport other than
	// "http" or "ws".
	ErrUnsupportedTransport = errors.New("unsupported adapter transport")
	// ErrInvalidStorageConfigs indicates invalid server storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or client log file).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker settings
	// (for example, a non-positive queue size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
