// SPDX-License-Identifier: MIT

// Package config loads planner configuration from YAML with environment
// overrides and struct-tag validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aislenav/internal/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full planner configuration.
type Config struct {
	Log      logging.Config `yaml:"log" json:"log"`
	Extract  Extract        `yaml:"extract" json:"extract"`
	Grid     Grid           `yaml:"grid" json:"grid"`
	Buffer   Buffer         `yaml:"buffer" json:"buffer"`
	Pathfind Pathfind       `yaml:"pathfind" json:"pathfind"`
	Solver   Solver         `yaml:"solver" json:"solver"`
}

// Extract configures segment extraction.
type Extract struct {
	SimplifyTolerance float64 `yaml:"simplifyTolerance" json:"simplifyTolerance" validate:"gte=0"`
}

// Grid configures rasterization.
type Grid struct {
	Margin     int   `yaml:"margin" json:"margin" validate:"gte=0"`
	MaxCells   int64 `yaml:"maxCells" json:"maxCells" validate:"gt=0"`
	BatchSize  int   `yaml:"batchSize" json:"batchSize" validate:"gt=0"`
	YieldEvery int   `yaml:"yieldEvery" json:"yieldEvery" validate:"gt=0"`
	MaxSide    int   `yaml:"maxSide" json:"maxSide" validate:"gt=0"`
}

// Buffer configures wall dilation and clearance around stops.
type Buffer struct {
	Radius int `yaml:"radius" json:"radius" validate:"gte=0"`
	// ClearRadius of −1 reuses Radius.
	ClearRadius int `yaml:"clearRadius" json:"clearRadius" validate:"gte=-1"`
}

// Pathfind configures the distance matrix build.
type Pathfind struct {
	StrictCorners bool `yaml:"strictCorners" json:"strictCorners"`
	// Workers of 0 uses GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers" validate:"gte=0,lte=1024"`
}

// Solver configures the route optimizer.
type Solver struct {
	Algorithm string        `yaml:"algorithm" json:"algorithm" validate:"oneof=auto brute_force held_karp nearest_two_opt branch_and_bound"`
	MaxSweeps int           `yaml:"maxSweeps" json:"maxSweeps" validate:"gte=0"`
	TimeLimit time.Duration `yaml:"timeLimit" json:"timeLimit" validate:"gte=0"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Log:     logging.Config{Level: "info", Format: "text"},
		Extract: Extract{SimplifyTolerance: 0},
		Grid: Grid{
			Margin:     5,
			MaxCells:   10_000_000,
			BatchSize:  25,
			YieldEvery: 100,
			MaxSide:    1000,
		},
		Buffer:   Buffer{Radius: 2, ClearRadius: -1},
		Pathfind: Pathfind{},
		Solver:   Solver{Algorithm: "auto"},
	}
}

var validate = validator.New()

// Validate checks struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load reads path (if non-empty) over Default, applies AISLENAV_*
// environment overrides, and validates the result. Unknown YAML keys are
// rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = Parse(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document omits.
func Parse(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(cfg)
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) { return yaml.Marshal(cfg) }

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg from environment variables:
//
//	AISLENAV_LOG_LEVEL, AISLENAV_LOG_FORMAT,
//	AISLENAV_MAX_CELLS, AISLENAV_MAX_SIDE, AISLENAV_BUFFER_RADIUS,
//	AISLENAV_WORKERS, AISLENAV_ALGORITHM, AISLENAV_TIME_LIMIT.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
		}
		*dst = n

		return nil
	}

	str("AISLENAV_LOG_LEVEL", &cfg.Log.Level)
	str("AISLENAV_LOG_FORMAT", &cfg.Log.Format)
	str("AISLENAV_ALGORITHM", &cfg.Solver.Algorithm)
	if err := integer("AISLENAV_MAX_SIDE", &cfg.Grid.MaxSide); err != nil {
		return err
	}
	if err := integer("AISLENAV_BUFFER_RADIUS", &cfg.Buffer.Radius); err != nil {
		return err
	}
	if err := integer("AISLENAV_WORKERS", &cfg.Pathfind.Workers); err != nil {
		return err
	}
	if v, ok := lookup("AISLENAV_MAX_CELLS"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: AISLENAV_MAX_CELLS=%q: %v", ErrInvalid, v, err)
		}
		cfg.Grid.MaxCells = n
	}
	if v, ok := lookup("AISLENAV_TIME_LIMIT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: AISLENAV_TIME_LIMIT=%q: %v", ErrInvalid, v, err)
		}
		cfg.Solver.TimeLimit = d
	}

	return nil
}
