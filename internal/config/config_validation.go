// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to fields that no configuration source set. The cadences
// mirror the CRM client's behavior: 10s autosave, 30s status poll, daily
// cleanup with a 7-day retention window.
const (
	DefaultRequestTimeout     = 30 * time.Second
	DefaultAutosaveInterval   = 10 * time.Second
	DefaultStatusPollInterval = 30 * time.Second
	DefaultCleanupInterval    = 24 * time.Hour
	DefaultRetention          = 7 * 24 * time.Hour
	DefaultProbeInterval      = 15 * time.Second
	DefaultDrainDebounce      = 5 * time.Second

	DefaultAutosaveDSN = "crmsync-autosave.db"
	DefaultCacheDSN    = "crmsync-offline.db"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.AutosaveDSN == "" {
		cfg.Storage.AutosaveDSN = DefaultAutosaveDSN
	}
	if cfg.Storage.CacheDSN == "" {
		cfg.Storage.CacheDSN = DefaultCacheDSN
	}
	if cfg.Workers.AutosaveInterval == 0 {
		cfg.Workers.AutosaveInterval = DefaultAutosaveInterval
	}
	if cfg.Workers.StatusPollInterval == 0 {
		cfg.Workers.StatusPollInterval = DefaultStatusPollInterval
	}
	if cfg.Workers.CleanupInterval == 0 {
		cfg.Workers.CleanupInterval = DefaultCleanupInterval
	}
	if cfg.Workers.Retention == 0 {
		cfg.Workers.Retention = DefaultRetention
	}
	if cfg.Workers.ProbeInterval == 0 {
		cfg.Workers.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Workers.DrainDebounce == 0 {
		cfg.Workers.DrainDebounce = DefaultDrainDebounce
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the application relies on at startup. The two database paths
// must differ: drafts/queue and the offline cache are separate logical
// databases.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.AutosaveDSN == cfg.Storage.CacheDSN {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.Retention < cfg.Workers.CleanupInterval {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
