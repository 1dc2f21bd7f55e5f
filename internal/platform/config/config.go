// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultTransportMaxIdleConns is the default max idle connections.
	DefaultTransportMaxIdleConns = 100

	// DefaultTransportMaxIdleConnsPerHost is the default max idle connections per host.
	DefaultTransportMaxIdleConnsPerHost = 10

	// DefaultTransportIdleConnTimeout is the default idle connection timeout.
	DefaultTransportIdleConnTimeout = 90 * time.Second

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultSongURL is the random song endpoint the player reads from.
	DefaultSongURL = "https://api.uomg.com/api/rand.music?sort=%E7%83%AD%E6%AD%8C%E6%A6%9C&format=json"

	// DefaultNsmaoKey is the access key bound to the nsmao quote and weather endpoints.
	DefaultNsmaoKey = "XPYdG7ccICDW47apDHcLzCVHiH"

	// envPrefix is the prefix of environment variable overrides.
	envPrefix = "APP_"

	// envLevelSeparator separates key levels in environment variable names,
	// e.g. APP_SERVICES__SONG__BASE_URL -> services.song.base_url.
	envLevelSeparator = "__"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required" yaml:"app"`
	Server    ServerConfig    `koanf:"server"    validate:"required" yaml:"server"`
	Log       LogConfig       `koanf:"log"       validate:"required" yaml:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry" yaml:"telemetry"`
	Client    ClientConfig    `koanf:"client"    validate:"required" yaml:"client"`
	Services  ServicesConfig  `koanf:"services"  validate:"required" yaml:"services"`
	SiteLinks SiteLinksConfig `koanf:"sitelinks" validate:"required" yaml:"sitelinks"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required" yaml:"name"`
	Version     string `koanf:"version"     validate:"required" yaml:"version"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test" yaml:"environment"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535" yaml:"port"`
	Host            string        `koanf:"host"             validate:"required" yaml:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s" yaml:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s" yaml:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s" yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s" yaml:"shutdown_timeout"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1" yaml:"max_request_size"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error" yaml:"level"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty" yaml:"format"`
	File   LogFileConfig `koanf:"file" yaml:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled" yaml:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true" yaml:"path"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024" yaml:"max_size"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100" yaml:"max_backups"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365" yaml:"max_age"`
	Compress   bool   `koanf:"compress" yaml:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled" yaml:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url" yaml:"endpoint"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true" yaml:"service_name"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1" yaml:"sampling_rate"`
}

// ClientConfig contains HTTP client settings for upstream services.
// A zero Timeout leaves requests bounded only by the caller's context.
type ClientConfig struct {
	Timeout   time.Duration   `koanf:"timeout"   validate:"min=0" yaml:"timeout"`
	Transport TransportConfig `koanf:"transport" validate:"required" yaml:"transport"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1" yaml:"max_idle_conns"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1" yaml:"max_idle_conns_per_host"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s" yaml:"idle_conn_timeout"`
}

// ServicesConfig contains the upstream services the gateway talks to.
type ServicesConfig struct {
	Song     ServiceEndpointConfig `koanf:"song"     validate:"required" yaml:"song"`
	Hitokoto ServiceEndpointConfig `koanf:"hitokoto" validate:"required" yaml:"hitokoto"`
	Nsmao    ServiceEndpointConfig `koanf:"nsmao"    validate:"required" yaml:"nsmao"`
	Amap     ServiceEndpointConfig `koanf:"amap"     validate:"required" yaml:"amap"`
	Oioweb   ServiceEndpointConfig `koanf:"oioweb"   validate:"required" yaml:"oioweb"`
}

// ServiceEndpointConfig contains configuration for an upstream service endpoint.
// Key is only used by services whose endpoints carry an embedded access key.
type ServiceEndpointConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,httpurl" yaml:"base_url"`
	Name    string `koanf:"name"     validate:"required" yaml:"name"`
	Key     string `koanf:"key" yaml:"key"`
}

// SiteLinksConfig locates the homepage link grid asset.
type SiteLinksConfig struct {
	Path string `koanf:"path" validate:"required" yaml:"path"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "homepage-gateway",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/homepage.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "homepage-gateway",
		"telemetry.sampling_rate": 1.0,

		"client.timeout":                           "0s",
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       "90s",

		"services.song.base_url":     DefaultSongURL,
		"services.song.name":         "song-api",
		"services.hitokoto.base_url": "https://v1.hitokoto.cn",
		"services.hitokoto.name":     "hitokoto",
		"services.nsmao.base_url":    "https://api.nsmao.net",
		"services.nsmao.name":        "nsmao",
		"services.nsmao.key":         DefaultNsmaoKey,
		"services.amap.base_url":     "https://restapi.amap.com",
		"services.amap.name":         "amap",
		"services.oioweb.base_url":   "https://api.oioweb.cn",
		"services.oioweb.name":       "oioweb",

		"sitelinks.path": "assets/siteLinks.json",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix, "__" between key levels)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err = k.Load(env.Provider(envPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_LOG__FILE__MAX_SIZE to log.file.max_size.
func envKey(s string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, envPrefix)),
		envLevelSeparator,
		".",
	)
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

// maskedValue replaces secrets in printed configuration.
const maskedValue = "********"

// Masked returns a copy of the configuration with access keys hidden.
func (c *Config) Masked() *Config {
	out := *c

	for _, endpoint := range []*ServiceEndpointConfig{
		&out.Services.Song,
		&out.Services.Hitokoto,
		&out.Services.Nsmao,
		&out.Services.Amap,
		&out.Services.Oioweb,
	} {
		if endpoint.Key != "" {
			endpoint.Key = maskedValue
		}
	}

	return &out
}
