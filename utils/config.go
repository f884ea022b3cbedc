package utils

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchemaJSON string

var (
	configSchemaOnce sync.Once
	configSchema     *jsonschema.Schema
	configSchemaErr  error
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Generations         int      `json:"generations" yaml:"generations"`
	Header              string   `json:"header" yaml:"header"`
	Patterns            []string `json:"patterns" yaml:"patterns"`
	StagnationThreshold int      `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	StopWhenStagnant    bool     `json:"stop_when_stagnant" yaml:"stop_when_stagnant"`
	ReportEvery         int      `json:"report_every" yaml:"report_every"`
	MaxWorkers          int      `json:"max_workers" yaml:"max_workers"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations:         1,
		Header:              "#Life 1.06",
		StagnationThreshold: 5,
		StopWhenStagnant:    false,
		ReportEvery:         0, // Disable progress reports
		MaxWorkers:          0, // One worker per CPU
	}
}

// Validate checks the config for values the driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "generations must be >= 0, got %d", c.Generations)
	case strings.TrimSpace(c.Header) == "":
		return errors.Wrap(ErrInvalidConfig, "header must not be empty")
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must be >= 1, got %d", c.StagnationThreshold)
	case c.ReportEvery < 0:
		return errors.Wrapf(ErrInvalidConfig, "report_every must be >= 0, got %d", c.ReportEvery)
	case c.MaxWorkers < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_workers must be >= 0, got %d", c.MaxWorkers)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&config); err != nil && err != io.EOF {
			return config, errors.Wrapf(ErrInvalidConfig, "[LoadConfig] failed to unmarshal yaml from file: %+v: %v", filename, err)
		}
	default:
		if err = validateJSON(data); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] schema validation failed for file: %+v", filename)
		}
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}
	return config, nil
}

func validateJSON(data []byte) error {
	configSchemaOnce.Do(func() {
		configSchema, configSchemaErr = jsonschema.CompileString("config.schema.json", configSchemaJSON)
	})
	if configSchemaErr != nil {
		return errors.Wrap(configSchemaErr, "[validateJSON] failed to compile schema")
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "[validateJSON] failed to decode document")
	}
	if err := configSchema.Validate(doc); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	return nil
}
