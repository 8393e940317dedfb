// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for crmsync.
// It aggregates all sub-configurations and is populated by merging values
// from command-line flags, environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote authority address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the file paths of the two local databases.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the cadences of the background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Session optionally bootstraps the persisted login session.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of flags and environment variables when non-empty.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the remote authority transport.
type Adapter struct {
	// BaseURL is the CRM backend base URL (e.g. "https://crm.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound calls. A timed
	// out delivery counts as an ordinary failure against the retry ceiling.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the SQLite file paths of the two logical databases.
type Storage struct {
	// AutosaveDSN is the database holding drafts, the operation queue and
	// the login session.
	// Env: STORAGE_AUTOSAVE_DSN
	AutosaveDSN string `env:"AUTOSAVE_DSN"`

	// CacheDSN is the database holding offline entity mirrors and their
	// action queue.
	// Env: STORAGE_CACHE_DSN
	CacheDSN string `env:"CACHE_DSN"`
}

// Workers holds the cadences of the periodic background jobs.
type Workers struct {
	// AutosaveInterval is the draft snapshot period per form.
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`

	// StatusPollInterval is the sync-status/conflict refresh period.
	// Env: WORKERS_STATUS_POLL_INTERVAL
	StatusPollInterval time.Duration `env:"STATUS_POLL_INTERVAL"`

	// CleanupInterval is how often the retention sweep runs.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// Retention is the age past which drafts and completed queue entries
	// are swept. Failed entries are never swept.
	// Env: WORKERS_RETENTION
	Retention time.Duration `env:"RETENTION"`

	// ProbeInterval is the connectivity probe period.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// DrainDebounce collapses online transitions that arrive within this
	// window into a single queue drain.
	// Env: WORKERS_DRAIN_DEBOUNCE
	DrainDebounce time.Duration `env:"DRAIN_DEBOUNCE"`
}

// Session optionally seeds the persisted login session, e.g. after the user
// authenticated in the CRM web client and exported a token.
type Session struct {
	// Token is a bearer token for the remote authority.
	// Env: SESSION_TOKEN
	Token string `env:"TOKEN"`

	// UserID is the id of the logged-in user.
	// Env: SESSION_USER_ID
	UserID int64 `env:"USER_ID"`
}

// GetConfig assembles the final configuration: flags first, then environment
// variables, then the optional JSON file, merged so that earlier sources win.
// Defaults are applied and the result validated before it is returned.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, nil
}
