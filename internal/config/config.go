// Package config provides configuration for the chessrules hosts.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
// Sub-configs group settings by the component that reads them.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Engine holds move selection and parallelism settings.
	Engine *EngineConfig

	// Server holds the HTTP host settings.
	Server *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Engine:     NewEngineConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer for diagnostics.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
