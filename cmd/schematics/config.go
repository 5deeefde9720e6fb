package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/IBM/schematics-go-sdk"
)

// Environment variables read by the CLI. They override the config file.
const (
	envURL         = "SCHEMATICS_URL"
	envRegion      = "SCHEMATICS_REGION"
	envBearerToken = "SCHEMATICS_BEARER_TOKEN"
	envDebug       = "SCHEMATICS_DEBUG"
)

// Config is the CLI profile.
type Config struct {
	URL         string        `yaml:"url"`
	Region      string        `yaml:"region"`
	BearerToken string        `yaml:"bearer_token"`
	Debug       bool          `yaml:"debug"`
	Timeout     time.Duration `yaml:"timeout"`
	Retries     int           `yaml:"retries"`
	Output      string        `yaml:"output"`
}

// Defaults returns the profile used when no file is present.
func Defaults() *Config {
	return &Config{
		Timeout: 60 * time.Second,
		Output:  "json",
	}
}

// LoadConfig reads the YAML profile at path, then applies .env and
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		}
	}

	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envURL); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv(envRegion); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv(envBearerToken); v != "" {
		cfg.BearerToken = v
	}
	if v := os.Getenv(envDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

// Validate checks the profile before a client is built from it.
func (c *Config) Validate() error {
	var errs []string

	if c.BearerToken == "" {
		errs = append(errs, "bearer token is required (bearer_token or "+envBearerToken+")")
	}
	if c.URL == "" && c.Region != "" {
		if err := schematics.ValidateRegion(c.Region); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if c.Retries < 0 {
		errs = append(errs, "retries must not be negative")
	}
	switch c.Output {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Sprintf("output must be json or yaml, got %q", c.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// NewClient builds a Schematics client from the profile.
func (c *Config) NewClient() (*schematics.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []schematics.Option{
		schematics.WithBearerToken(c.BearerToken),
		schematics.WithDebug(c.Debug),
		schematics.WithUserAgent("schematics-cli"),
	}
	switch {
	case c.URL != "":
		opts = append(opts, schematics.WithURL(c.URL))
	case c.Region != "":
		opts = append(opts, schematics.WithRegion(c.Region))
	}
	if c.Timeout > 0 {
		opts = append(opts, schematics.WithTimeout(c.Timeout))
	}
	if c.Retries > 0 {
		opts = append(opts, schematics.WithRetries(c.Retries, 30*time.Second))
	}
	return schematics.New(opts...)
}
