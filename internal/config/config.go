// Package config loads process configuration from environment variables.
// Defaults apply to unset values, and everything is validated up front so a
// misconfigured process fails at startup instead of on first use.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"CENSUS_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"CENSUS_PORT" default:"8080"`

	ReadTimeout     time.Duration `env:"CENSUS_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `env:"CENSUS_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `env:"CENSUS_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `env:"CENSUS_SHUTDOWN_TIMEOUT" default:"10s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"CENSUS_REQUEST_TIMEOUT" default:"30s"`

	// DataDir is the only directory the HTTP API reads CSV files from.
	// Request paths are resolved relative to it (default: .)
	DataDir string `env:"CENSUS_DATA_DIR" default:"."`
}

// DataConfig holds input file settings.
type DataConfig struct {
	// CensusFile is loaded at startup when set
	CensusFile string `env:"CENSUS_FILE"`

	// StateCodeFile is loaded at startup when set
	StateCodeFile string `env:"STATE_CODE_FILE"`

	// MaxFileSize is the largest file a load will read, in bytes (default: 10MB)
	MaxFileSize int64 `env:"DATA_MAX_FILE_SIZE" default:"10485760"`
}

// OutputConfig holds serializer settings.
type OutputConfig struct {
	// Format is json or yaml (default: json)
	Format string `env:"OUTPUT_FORMAT" default:"json"`

	// Indent is spaces per nesting level; 0 is compact (default: 0)
	Indent int `env:"OUTPUT_INDENT" default:"0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
