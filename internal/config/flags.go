package config

import (
	"flag"
	"strings"
	"time"
)

// ParseStoreFlags parses the store server's configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres:// URI or SQLite file path)
//	-admin-token bearer secret required for PUT /config
//	-allowed-origins comma-separated CORS origin allow-list
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseStoreFlags() *StoreConfig {
	var serverAddress string
	var databaseDSN string
	var adminToken string
	var allowedOrigins string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&adminToken, "admin-token", "", "Admin bearer secret for writes")
	flag.StringVar(&allowedOrigins, "allowed-origins", "", "CORS origin allow-list (comma-separated)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StoreConfig{
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN: databaseDSN,
		},
		Auth: Auth{
			AdminToken: adminToken,
		},
		CORS: CORS{
			AllowedOrigins: splitOrigins(allowedOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// ParseClientFlags parses the site/dashboard configuration flags.
//
// Flags:
//
//	-a site listen address in format [host]:[port]
//	-base base config source (file path or URL)
//	-override local override slot file path
//	-remote config store endpoint URL
//	-remote-token bearer secret for remote saves
//	-lang display locale override
//	-refresh-interval config refresh period (e.g., "5m"; 0 disables)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseClientFlags() *ClientConfig {
	var serverAddress string
	var baseSource string
	var overridePath string
	var remoteEndpoint string
	var remoteToken string
	var lang string
	var refreshInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&baseSource, "base", "", "Base config source (file path or URL)")
	flag.StringVar(&overridePath, "override", "", "Local override slot file path")
	flag.StringVar(&remoteEndpoint, "remote", "", "Config store endpoint URL")
	flag.StringVar(&remoteToken, "remote-token", "", "Bearer secret for remote saves")
	flag.StringVar(&lang, "lang", "", "Display locale override")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Config refresh period (0 disables)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		Site: Site{
			BaseSource:   baseSource,
			OverridePath: overridePath,
			Lang:         lang,
		},
		Remote: Remote{
			Endpoint: remoteEndpoint,
			Token:    remoteToken,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
