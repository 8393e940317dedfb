package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// ── parseEnv ─────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_BASE_URL":        "https://crm.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_AUTOSAVE_DSN": "/var/lib/crmsync/autosave.db",
		"STORAGE_CACHE_DSN":    "/var/lib/crmsync/offline.db",

		"WORKERS_AUTOSAVE_INTERVAL":    "10s",
		"WORKERS_STATUS_POLL_INTERVAL": "30s",
		"WORKERS_CLEANUP_INTERVAL":     "24h",
		"WORKERS_RETENTION":            "168h",
		"WORKERS_PROBE_INTERVAL":       "15s",
		"WORKERS_DRAIN_DEBOUNCE":       "5s",

		"SESSION_TOKEN":   "bearer-token",
		"SESSION_USER_ID": "42",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://crm.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/crmsync/autosave.db", cfg.Storage.AutosaveDSN)
	assert.Equal(t, "/var/lib/crmsync/offline.db", cfg.Storage.CacheDSN)
	assert.Equal(t, 10*time.Second, cfg.Workers.AutosaveInterval)
	assert.Equal(t, 7*24*time.Hour, cfg.Workers.Retention)
	assert.Equal(t, "bearer-token", cfg.Session.Token)
	assert.Equal(t, int64(42), cfg.Session.UserID)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Adapter.BaseURL)
}

// ── parseJSON ────────────────────────────────────────────────────────────────

func TestParseJSON_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"adapter": {
			"base_url": "https://crm.example.com",
			"request_timeout": "45s"
		},
		"storage": {
			"autosave_dsn": "autosave.db",
			"cache_dsn": "offline.db"
		},
		"workers": {
			"autosave_interval": "10s",
			"status_poll_interval": "30s",
			"cleanup_interval": "24h",
			"retention": "168h"
		},
		"session": { "token": "tok", "user_id": 7 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "https://crm.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "autosave.db", cfg.Storage.AutosaveDSN)
	assert.Equal(t, 10*time.Second, cfg.Workers.AutosaveInterval)
	assert.Equal(t, 7*24*time.Hour, cfg.Workers.Retention)
	assert.Equal(t, int64(7), cfg.Session.UserID)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidBody(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

// ── defaults & validation ────────────────────────────────────────────────────

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultAutosaveInterval, cfg.Workers.AutosaveInterval)
	assert.Equal(t, DefaultStatusPollInterval, cfg.Workers.StatusPollInterval)
	assert.Equal(t, DefaultCleanupInterval, cfg.Workers.CleanupInterval)
	assert.Equal(t, DefaultRetention, cfg.Workers.Retention)
	assert.Equal(t, DefaultAutosaveDSN, cfg.Storage.AutosaveDSN)
	assert.Equal(t, DefaultCacheDSN, cfg.Storage.CacheDSN)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Workers.AutosaveInterval = 3 * time.Second
	cfg.applyDefaults()

	assert.Equal(t, 3*time.Second, cfg.Workers.AutosaveInterval)
}

func TestValidate_MissingBaseURL(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestValidate_SameDSNForBothDatabases(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.Adapter.BaseURL = "https://crm.example.com"
	cfg.Storage.CacheDSN = cfg.Storage.AutosaveDSN

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_RetentionShorterThanCleanup(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.Adapter.BaseURL = "https://crm.example.com"
	cfg.Workers.Retention = time.Hour

	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestValidate_Success(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.Adapter.BaseURL = "https://crm.example.com"

	assert.NoError(t, cfg.validate())
}

// ── builder ──────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderAppliesDefaultsButFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestBuild_MergePrecedence(t *testing.T) {
	b := newConfigBuilder()
	first := &StructuredConfig{}
	first.Adapter.BaseURL = "https://first.example.com"
	second := &StructuredConfig{}
	second.Adapter.BaseURL = "https://second.example.com"
	second.Storage.AutosaveDSN = "from-second.db"

	b.configs = append(b.configs, first, second)
	cfg, err := b.build()

	require.NoError(t, err)
	// earlier sources win; later sources only fill gaps
	assert.Equal(t, "https://first.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, "from-second.db", cfg.Storage.AutosaveDSN)
}
