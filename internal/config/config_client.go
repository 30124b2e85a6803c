package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultRequestTimeout  = 15 * time.Second
	defaultReconnectDelay  = 5 * time.Second
	defaultLivenessTimeout = 90 * time.Second
	defaultKeyringService  = "go-device-sync"
	defaultDSN             = "device-sync.db"
	defaultInboxDir        = "inbox"
)

// ClientSync holds synchronization settings used by the transport and the
// background workers.
type ClientSync struct {
	ServerURL       string
	Email           string
	DeviceKey       string
	KeyringService  string
	RequestTimeout  time.Duration
	ReconnectDelay  time.Duration
	LivenessTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DSN is the SQLite database file.
	DSN string
	// InboxDir is the directory opened shares are written to.
	InboxDir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// LogFile is the client log file path.
	LogFile string
	// Sync contains the synchronization settings.
	Sync ClientSync
	// Storage contains local storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration. args are the command-line arguments
// without the program name.
//
// Unset durations, the keyring service, the database file and the inbox
// directory fall back to defaults located in the user configuration
// directory.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	clientCfg.applyDefaults(userDataDir())

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		LogFile: cfg.App.LogFile,
		Sync: ClientSync{
			ServerURL:       cfg.Sync.ServerURL,
			Email:           cfg.Sync.Email,
			DeviceKey:       cfg.Sync.DeviceKey,
			KeyringService:  cfg.Sync.KeyringService,
			RequestTimeout:  cfg.Sync.RequestTimeout,
			ReconnectDelay:  cfg.Sync.ReconnectDelay,
			LivenessTimeout: cfg.Sync.LivenessTimeout,
		},
		Storage: ClientStorage{
			DSN:      cfg.Storage.DSN,
			InboxDir: cfg.Storage.InboxDir,
		},
	}
}

func (cfg *ClientConfig) applyDefaults(dataDir string) {
	if cfg.Sync.RequestTimeout == 0 {
		cfg.Sync.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Sync.ReconnectDelay == 0 {
		cfg.Sync.ReconnectDelay = defaultReconnectDelay
	}
	if cfg.Sync.LivenessTimeout == 0 {
		cfg.Sync.LivenessTimeout = defaultLivenessTimeout
	}
	if cfg.Sync.KeyringService == "" {
		cfg.Sync.KeyringService = defaultKeyringService
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = filepath.Join(dataDir, defaultDSN)
	}
	if cfg.Storage.InboxDir == "" {
		cfg.Storage.InboxDir = filepath.Join(dataDir, defaultInboxDir)
	}
}

func userDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, defaultKeyringService)
}
