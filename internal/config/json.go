package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		AutosaveDSN string `json:"autosave_dsn"`
		CacheDSN    string `json:"cache_dsn"`
	} `json:"storage,omitempty"`

	Workers struct {
		AutosaveInterval   Duration `json:"autosave_interval"`
		StatusPollInterval Duration `json:"status_poll_interval"`
		CleanupInterval    Duration `json:"cleanup_interval"`
		Retention          Duration `json:"retention"`
		ProbeInterval      Duration `json:"probe_interval"`
		DrainDebounce      Duration `json:"drain_debounce"`
	} `json:"workers,omitempty"`

	Session struct {
		Token  string `json:"token"`
		UserID int64  `json:"user_id"`
	} `json:"session,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			AutosaveDSN: jsonCfg.Storage.AutosaveDSN,
			CacheDSN:    jsonCfg.Storage.CacheDSN,
		},
		Workers: Workers{
			AutosaveInterval:   time.Duration(jsonCfg.Workers.AutosaveInterval),
			StatusPollInterval: time.Duration(jsonCfg.Workers.StatusPollInterval),
			CleanupInterval:    time.Duration(jsonCfg.Workers.CleanupInterval),
			Retention:          time.Duration(jsonCfg.Workers.Retention),
			ProbeInterval:      time.Duration(jsonCfg.Workers.ProbeInterval),
			DrainDebounce:      time.Duration(jsonCfg.Workers.DrainDebounce),
		},
		Session: Session{
			Token:  jsonCfg.Session.Token,
			UserID: jsonCfg.Session.UserID,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
