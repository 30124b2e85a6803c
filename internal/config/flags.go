package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-s/-server       synchronization server URL
//	-email           account email
//	-device-key      one-shot device activation key
//	-keyring-service secret store service namespace
//	-request-timeout request timeout (e.g., "15s")
//	-reconnect-delay event stream reconnect delay (e.g., "5s")
//	-liveness        event stream liveness timeout (e.g., "90s")
//	-d               SQLite database file
//	-inbox           inbox directory
//	-log             log file path
//	-c/-config       json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverURL       string
		email           string
		deviceKey       string
		keyringService  string
		requestTimeout  time.Duration
		reconnectDelay  time.Duration
		livenessTimeout time.Duration
		dsn             string
		inboxDir        string
		logFile         string
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&serverURL, "s", "", "Synchronization server URL")
	fs.StringVar(&serverURL, "server", "", "Synchronization server URL (alias)")
	fs.StringVar(&email, "email", "", "Account email")
	fs.StringVar(&deviceKey, "device-key", "", "Device activation key")
	fs.StringVar(&keyringService, "keyring-service", "", "Secret store service name")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&reconnectDelay, "reconnect-delay", 0, "Event stream reconnect delay (e.g., 5s)")
	fs.DurationVar(&livenessTimeout, "liveness", 0, "Event stream liveness timeout (e.g., 90s)")
	fs.StringVar(&dsn, "d", "", "SQLite database file")
	fs.StringVar(&inboxDir, "inbox", "", "Inbox directory")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Sync: Sync{
			ServerURL:       serverURL,
			Email:           email,
			DeviceKey:       deviceKey,
			KeyringService:  keyringService,
			RequestTimeout:  requestTimeout,
			ReconnectDelay:  reconnectDelay,
			LivenessTimeout: livenessTimeout,
		},
		Storage: Storage{
			DSN:      dsn,
			InboxDir: inboxDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
