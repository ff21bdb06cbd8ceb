package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP host.
type ServerConfig struct {
	// ListenAddr is the address passed to the listener, e.g. ":8080"
	ListenAddr string

	// AllowOrigins is the comma-separated CORS origin list
	AllowOrigins string

	// ReadTimeout bounds how long a request body may take to arrive
	ReadTimeout time.Duration

	// MaxGames caps the number of live sessions (0 = unlimited)
	MaxGames int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:   ":8080",
		AllowOrigins: "*",
		ReadTimeout:  10 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if strings.TrimSpace(s.ListenAddr) == "" {
		return fmt.Errorf("listen address is empty: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games (%d) is negative: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
