package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration is wrapped by every construction-time validation error.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Default run parameters.
const (
	DefaultTotalTime      uint64  = 1000
	DefaultArrivalProb    float64 = 0.3
	DefaultMinServiceTime uint64  = 1
	DefaultMaxServiceTime uint64  = 5
	DefaultSeed           uint64  = 42
)

// Config holds the parameters of one simulation run.
type Config struct {
	TotalTime      uint64  `yaml:"total_time"`       // number of ticks simulated
	ArrivalProb    float64 `yaml:"arrival_prob"`     // per-tick arrival probability, in [0, 1]
	MinServiceTime uint64  `yaml:"min_service_time"` // inclusive lower bound of service draws
	MaxServiceTime uint64  `yaml:"max_service_time"` // inclusive upper bound of service draws
	Seed           uint64  `yaml:"seed"`             // RNG seed
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		TotalTime:      DefaultTotalTime,
		ArrivalProb:    DefaultArrivalProb,
		MinServiceTime: DefaultMinServiceTime,
		MaxServiceTime: DefaultMaxServiceTime,
		Seed:           DefaultSeed,
	}
}

// Validate checks the arrival probability and service-time range.
// The returned error wraps ErrInvalidConfiguration.
func (c Config) Validate() error {
	if err := validateArrivalProb(c.ArrivalProb); err != nil {
		return err
	}
	return validateServiceRange(c.MinServiceTime, c.MaxServiceTime)
}

// LoadConfig reads a YAML run configuration and validates it.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReadConfig decodes a YAML run configuration without validating it, so
// callers can apply overrides first. Fields absent from the file keep their
// DefaultConfig values; unknown fields are rejected.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty file decodes to io.EOF and leaves the defaults in place.
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing run config: %w", err)
	}
	return cfg, nil
}
