package config

import (
	"strings"
	"testing"
	"time"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want %v", cfg.Server.ShutdownTimeout, 10*time.Second)
	}
	if cfg.Server.DataDir != "." {
		t.Errorf("Server.DataDir = %q, want %q", cfg.Server.DataDir, ".")
	}
	if cfg.Data.MaxFileSize != 10485760 {
		t.Errorf("Data.MaxFileSize = %d, want %d", cfg.Data.MaxFileSize, 10485760)
	}
	if cfg.Data.CensusFile != "" {
		t.Errorf("Data.CensusFile = %q, want empty", cfg.Data.CensusFile)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{
		"CENSUS_PORT":         "9090",
		"CENSUS_FILE":         "data/IndiaStateCensusData.csv",
		"OUTPUT_FORMAT":       "yaml",
		"OUTPUT_INDENT":       "2",
		"LOG_LEVEL":           "debug",
		"CENSUS_IDLE_TIMEOUT": "2m",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.IdleTimeout != 2*time.Minute {
		t.Errorf("Server.IdleTimeout = %v, want %v", cfg.Server.IdleTimeout, 2*time.Minute)
	}
	if cfg.Data.CensusFile != "data/IndiaStateCensusData.csv" {
		t.Errorf("Data.CensusFile = %q", cfg.Data.CensusFile)
	}
	if cfg.Output.Format != "yaml" || cfg.Output.Indent != 2 {
		t.Errorf("Output = %+v, want yaml/2", cfg.Output)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "non-numeric port",
			env:     map[string]string{"CENSUS_PORT": "abc"},
			wantErr: "CENSUS_PORT",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"CENSUS_PORT": "70000"},
			wantErr: "must be 1-65535",
		},
		{
			name:    "bad duration",
			env:     map[string]string{"CENSUS_READ_TIMEOUT": "soon"},
			wantErr: "invalid duration",
		},
		{
			name:    "unknown output format",
			env:     map[string]string{"OUTPUT_FORMAT": "xml"},
			wantErr: "OUTPUT_FORMAT",
		},
		{
			name:    "negative indent",
			env:     map[string]string{"OUTPUT_INDENT": "-1"},
			wantErr: "OUTPUT_INDENT",
		},
		{
			name:    "zero max file size",
			env:     map[string]string{"DATA_MAX_FILE_SIZE": "0"},
			wantErr: "DATA_MAX_FILE_SIZE",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(mapLookup(tt.env))
			if err == nil {
				t.Fatal("LoadFrom() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFrom() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	cfg.Server.Port = 0
	cfg.Server.DataDir = " "
	cfg.Logging.Format = "xml"

	err = cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
	for _, want := range []string{"CENSUS_PORT", "CENSUS_DATA_DIR", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9000, ":9000"},
		{"::1", 443, "[::1]:443"},
	}

	for _, tt := range tests {
		c := ServerConfig{Host: tt.host, Port: tt.port}
		if got := c.Addr(); got != tt.want {
			t.Errorf("Addr(%q, %d) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfig_String(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{"STATE_CODE_FILE": "IndiaStateCode.csv", "CENSUS_DATA_DIR": "/srv/census"}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	s := cfg.String()
	for _, want := range []string{"0.0.0.0:8080", `DataDir: "/srv/census"`, "IndiaStateCode.csv", `Format: "json"`} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
