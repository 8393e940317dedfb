package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote authority settings
	// (for example, missing base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, both logical databases pointing at the same file).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a retention window shorter than the cleanup cadence).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
