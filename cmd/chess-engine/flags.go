// flags.go - Command-line flag definitions and configuration overrides
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position
	fenFlag   = flag.String("fen", "", "Start position in FEN (default: config start-fen)")
	movesFlag = flag.String("moves", "", "Moves to play in SAN, space separated; suffix (=) offers a draw, 'accept' and 'resign' are actions")

	// Move generation
	perftDepth  = flag.Int("perft", 0, "Count leaf positions to depth N")
	divideDepth = flag.Int("divide", 0, "Count leaf positions to depth N under each root move")

	// Search
	bestMove   = flag.Bool("best", false, "Choose a move for the position")
	depthFlag  = flag.Int("depth", 0, "Search depth in plies (default: config)")
	policyFlag = flag.String("policy", "", "Move policy: best, worst or random (default: config)")
	seedFlag   = flag.Int64("seed", 0, "Seed for the random policy")

	// Batch analysis
	analyzeFile = flag.String("analyze", "", "File of FEN positions to analyse, one per line")
	workers     = flag.Int("workers", 0, "Number of analysis workers (default: config)")
	stopOnError = flag.Bool("stop-on-error", false, "Stop batch analysis at the first bad position")

	// Configuration and logging
	configFile = flag.String("config", "", "YAML configuration file")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat  = flag.String("log-format", "", "Log format: text or json")
	logFile    = flag.String("l", "", "Write logs to file instead of stderr")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overrides cfg with the flags that were given explicitly, so
// configuration file and environment values survive unset flags.
func applyFlags(cfg *config.Config, set map[string]bool) *config.Config {
	b := config.From(cfg)
	if set["fen"] {
		b.WithStartFEN(*fenFlag)
	}
	if set["depth"] {
		b.WithDepth(*depthFlag)
	}
	if set["policy"] {
		b.WithPolicy(*policyFlag)
	}
	if set["seed"] {
		b.WithSeed(*seedFlag)
	}
	if set["workers"] {
		b.WithWorkers(*workers)
	}
	if set["stop-on-error"] {
		b.WithStopOnError(*stopOnError)
	}
	if set["log-level"] {
		b.WithLogLevel(*logLevel)
	}
	if set["log-format"] {
		b.WithLogFormat(*logFormat)
	}
	return b.Build()
}
