package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/bigo/complexity"
)

// Output formats accepted by --format and the output config key.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config is the YAML configuration file understood by bigo.
//
//	tie_tolerance: 1e-9
//	strict: true
//	candidates: ["O(n)", "O(n log n)", "quadratic"]
//	output: table
//	log_level: info
//	cache_size: 256
type Config struct {
	TieTolerance float64  `yaml:"tie_tolerance"`
	Strict       bool     `yaml:"strict"`
	Candidates   []string `yaml:"candidates"`
	Output       string   `yaml:"output"`
	LogLevel     string   `yaml:"log_level"`
	CacheSize    int      `yaml:"cache_size"`
}

// DefaultConfig returns the settings used when no configuration file is given.
func DefaultConfig() Config {
	return Config{
		TieTolerance: complexity.DefaultTieTolerance,
		Output:       OutputTable,
		LogLevel:     "warn",
		CacheSize:    256,
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", c.Output, OutputTable, OutputJSON)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("invalid cache_size %d", c.CacheSize)
	}
	if _, err := c.InferOptions(); err != nil {
		return err
	}

	return nil
}

// InferOptions converts the configuration into inference options.
func (c Config) InferOptions() ([]complexity.InferOption, error) {
	opts := []complexity.InferOption{complexity.WithTieTolerance(c.TieTolerance)}
	if c.Strict {
		opts = append(opts, complexity.WithStrictValidation())
	}

	if len(c.Candidates) > 0 {
		names := make([]complexity.Name, 0, len(c.Candidates))
		for _, s := range c.Candidates {
			n, err := complexity.ParseName(s)
			if err != nil {
				return nil, fmt.Errorf("candidates: %w", err)
			}
			names = append(names, n)
		}
		opts = append(opts, complexity.WithCandidates(names...))
	}

	// Resolve once so invalid values surface as configuration errors.
	if _, err := complexity.NewInferConfig(opts...); err != nil {
		return nil, fmt.Errorf("invalid inference settings: %w", err)
	}

	return opts, nil
}
