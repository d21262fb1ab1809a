// chess-engine plays, counts and searches chess positions from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := initConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	a := &app{cfg: cfg, logger: initLogger(cfg), out: cfg.OutputFile, opts: optionsFromFlags()}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initConfig loads the configuration file and environment, applies the
// command-line overrides and validates the result.
func initConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	cfg = applyFlags(cfg, setFlags(flag.CommandLine))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile redirects logs to the -l file.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// initLogger builds a text or JSON logger at the configured level.
func initLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Log.JSON() {
		return slog.New(slog.NewJSONHandler(cfg.LogFile, opts))
	}
	return slog.New(slog.NewTextHandler(cfg.LogFile, opts))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays, counts and searches chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n%s\n", config.Usage())
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -moves \"e4 e5 Nf3 Nc6\"\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -perft 4\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -fen \"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1\" -best -depth 3\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -analyze positions.txt -workers 4\n")
}
