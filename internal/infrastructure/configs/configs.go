package configs

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Addr        string            `koanf:"addr"`
	Env         string            `koanf:"env"`
	Version     string            `koanf:"version"`
	Uploads     UploadsConfig     `koanf:"uploads"`
	Sweep       SweepConfig       `koanf:"sweep"`
	RateLimiter RateLimiterConfig `koanf:"rate_limiter"`
	CORS        CORSConfig        `koanf:"cors"`
	Tracing     TracingConfig     `koanf:"tracing"`
}

type UploadsConfig struct {
	Dir string `koanf:"dir"`
}

type SweepConfig struct {
	Interval time.Duration `koanf:"interval"`
}

type RateLimiterConfig struct {
	Enabled              bool          `koanf:"enabled"`
	RequestsPerTimeFrame int           `koanf:"requests_per_time_frame"`
	TimeFrame            time.Duration `koanf:"time_frame"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type TracingConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Endpoint string `koanf:"endpoint"`
}

// Load reads a YAML config file over the built-in defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	return &Config{
		Addr:    ":3000",
		Env:     "development",
		Version: "v2024.12.15.01",
		Uploads: UploadsConfig{Dir: "./uploads"},
		Sweep:   SweepConfig{Interval: 10 * time.Second},
		RateLimiter: RateLimiterConfig{
			Enabled:              true,
			RequestsPerTimeFrame: 100,
			TimeFrame:            time.Minute,
		},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		Tracing: TracingConfig{
			Enabled:  false,
			Endpoint: "localhost:4318",
		},
	}
}
