package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote authority base URL
//	-autosave-dsn autosave database file path
//	-cache-dsn offline cache database file path
//	-c/-config json file path with configs
//	-token bearer token to seed the local session
//	-user-id user id owning the seeded session
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-autosave-interval draft snapshot period (e.g., "10s")
//	-status-poll-interval status refresh period (e.g., "30s")
//	-cleanup-interval retention sweep period (e.g., "24h")
//	-retention draft/completed-operation retention window (e.g., "168h")
//	-probe-interval connectivity probe period (e.g., "15s")
//	-drain-debounce online-transition debounce window (e.g., "5s")
func ParseFlags() *StructuredConfig {
	var baseURL string
	var autosaveDSN, cacheDSN string
	var jsonConfigPath string
	var token string
	var userID int64
	var requestTimeout time.Duration
	var autosaveInterval time.Duration
	var statusPollInterval time.Duration
	var cleanupInterval time.Duration
	var retention time.Duration
	var probeInterval time.Duration
	var drainDebounce time.Duration

	flag.StringVar(&baseURL, "a", "", "Remote authority base URL")
	flag.StringVar(&autosaveDSN, "autosave-dsn", "", "Autosave database file path")
	flag.StringVar(&cacheDSN, "cache-dsn", "", "Offline cache database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&token, "token", "", "Bearer token to seed the local session")
	flag.Int64Var(&userID, "user-id", 0, "User id owning the seeded session")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&autosaveInterval, "autosave-interval", 0, "Draft snapshot period (e.g., 10s)")
	flag.DurationVar(&statusPollInterval, "status-poll-interval", 0, "Status refresh period (e.g., 30s)")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Retention sweep period (e.g., 24h)")
	flag.DurationVar(&retention, "retention", 0, "Retention window (e.g., 168h)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe period (e.g., 15s)")
	flag.DurationVar(&drainDebounce, "drain-debounce", 0, "Online-transition debounce window (e.g., 5s)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			AutosaveDSN: autosaveDSN,
			CacheDSN:    cacheDSN,
		},
		Workers: Workers{
			AutosaveInterval:   autosaveInterval,
			StatusPollInterval: statusPollInterval,
			CleanupInterval:    cleanupInterval,
			Retention:          retention,
			ProbeInterval:      probeInterval,
			DrainDebounce:      drainDebounce,
		},
		Session: Session{
			Token:  token,
			UserID: userID,
		},
		JSONFilePath: jsonConfigPath,
	}
}
