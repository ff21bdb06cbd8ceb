// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/fallback"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Starting position (default: the initial position)")
	movesFlag = flag.String("moves", "", "Moves to play first, in algebraic notation (space or comma separated)")

	// Queries
	showBoard  = flag.Bool("board", false, "Print the board")
	listLegal  = flag.Bool("legal", false, "List the legal moves")
	renderFlag = flag.String("render", "", "Coordinate moves to write in algebraic notation (e.g. 'e2e4,g1f3')")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")

	// Suggestion resolution
	suggestFlag = flag.String("suggest", "", "Candidate moves to resolve, falling back to a substitute (comma separated)")
	tierFlag    = flag.String("tier", "", "Fallback tier: low, medium, high (default: medium)")
	seedFlag    = flag.Int64("seed", 0, "Seed for fallback choices (0 = from the clock)")

	// Server options
	serve      = flag.Bool("serve", false, "Serve the HTTP and websocket API")
	listenAddr = flag.String("addr", "", "Listen address for -serve (default :8080)")
	origins    = flag.String("origins", "", "Allowed CORS origins for -serve (default *)")
	maxGames   = flag.Int("maxgames", 0, "Maximum live games for -serve (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors only, 1=summary, 2=running commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyEngineFlags(cfg); err != nil {
		return err
	}
	applyServerFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyEngineFlags configures move selection and parallelism.
func applyEngineFlags(cfg *config.Config) error {
	if *tierFlag != "" {
		tier, err := fallback.ParseTier(*tierFlag)
		if err != nil {
			return err
		}
		cfg.Engine.Tier = tier
	}
	if *seedFlag != 0 {
		cfg.Engine.Seed = *seedFlag
	}
	if *workers > 0 {
		cfg.Engine.Workers = *workers
	}
	return nil
}

// applyServerFlags configures the HTTP host.
func applyServerFlags(cfg *config.Config) {
	if *listenAddr != "" {
		cfg.Server.ListenAddr = *listenAddr
	}
	if *origins != "" {
		cfg.Server.AllowOrigins = *origins
	}
	cfg.Server.MaxGames = *maxGames
}
