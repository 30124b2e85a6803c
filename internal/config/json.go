package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file format.
// The device key is deliberately absent: secrets are not read from files.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Sync struct {
		ServerURL       string   `json:"server_url"`
		Email           string   `json:"email"`
		KeyringService  string   `json:"keyring_service"`
		RequestTimeout  Duration `json:"request_timeout"`
		ReconnectDelay  Duration `json:"reconnect_delay"`
		LivenessTimeout Duration `json:"liveness_timeout"`
	} `json:"sync,omitempty"`

	Storage struct {
		DSN      string `json:"dsn"`
		InboxDir string `json:"inbox_dir"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
		},
		Sync: Sync{
			ServerURL:       jsonCfg.Sync.ServerURL,
			Email:           jsonCfg.Sync.Email,
			KeyringService:  jsonCfg.Sync.KeyringService,
			RequestTimeout:  time.Duration(jsonCfg.Sync.RequestTimeout),
			ReconnectDelay:  time.Duration(jsonCfg.Sync.ReconnectDelay),
			LivenessTimeout: time.Duration(jsonCfg.Sync.LivenessTimeout),
		},
		Storage: Storage{
			DSN:      jsonCfg.Storage.DSN,
			InboxDir: jsonCfg.Storage.InboxDir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
