package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fallback"
)

// EngineConfig holds settings for move selection and parallel work.
type EngineConfig struct {
	// Tier is the default fallback tier for rejected suggestions
	Tier fallback.Tier

	// Seed seeds the fallback selector's random source
	Seed int64

	// Workers is the number of goroutines used for perft divide and batch validation
	Workers int
}

// NewEngineConfig creates an EngineConfig with default values.
// The seed is taken from the clock.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		Tier:    fallback.Medium,
		Seed:    time.Now().UnixNano(),
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", e.Workers, errors.ErrInvalidConfig)
	}
	switch e.Tier {
	case fallback.Low, fallback.Medium, fallback.High:
	default:
		return fmt.Errorf("unknown tier %d: %w", e.Tier, errors.ErrInvalidConfig)
	}
	return nil
}
