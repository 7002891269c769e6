package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/graphstep/internal/traversal"
)

// Config holds all the necessary configuration for an App instance to run.
// Zero values for the playback fields mean "use the graph file's value".
type Config struct {
	GraphPath string // .hcl, .yaml/.yml file or directory of .hcl files

	Algorithm string
	Start     string
	SpeedMs   int
	Autoplay  bool
	Renderers []string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if cfg.Algorithm != "" {
		if _, err := traversal.ParseAlgorithm(cfg.Algorithm); err != nil {
			return nil, err
		}
	}
	if cfg.SpeedMs < 0 {
		return nil, fmt.Errorf("speed must be positive, got %dms", cfg.SpeedMs)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port out of range: %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
