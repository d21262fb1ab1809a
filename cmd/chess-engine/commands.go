// commands.go - Position replay, perft, move choice and batch analysis
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/notation"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// drawOfferSuffix marks a move played with a draw offer, as in "Nf3(=)".
const drawOfferSuffix = "(=)"

// options selects what a run does.
type options struct {
	moves   string
	perft   int
	divide  int
	best    bool
	analyze string
}

// optionsFromFlags collects the command selection flags.
func optionsFromFlags() options {
	return options{
		moves:   *movesFlag,
		perft:   *perftDepth,
		divide:  *divideDepth,
		best:    *bestMove,
		analyze: *analyzeFile,
	}
}

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	opts   options
}

// run executes the selected command. Cancelling ctx abandons a batch analysis.
func (a *app) run(ctx context.Context) error {
	if a.opts.analyze != "" {
		return a.analyzeFile(ctx, a.opts.analyze)
	}

	g, err := a.play()
	if err != nil {
		return err
	}
	board := g.Board()

	switch {
	case a.opts.perft > 0:
		a.perft(&board, a.opts.perft)
	case a.opts.divide > 0:
		a.divide(&board, a.opts.divide)
	default:
		a.reportGame(g)
		if a.opts.best {
			a.best(g)
		}
	}
	return nil
}

// play starts a game at the configured position and applies the -moves actions.
func (a *app) play() (*game.Game, error) {
	g, err := game.NewGameFromFEN(a.cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	for _, action := range parseActions(a.opts.moves) {
		status, err := g.MakeMove(action)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("applied action", "action", action.String(), "status", status.String())
	}
	return g, nil
}

// parseActions splits move text into game actions.
func parseActions(text string) []game.Action {
	var actions []game.Action
	for _, token := range strings.Fields(text) {
		switch strings.ToLower(token) {
		case "resign":
			actions = append(actions, game.Resign())
		case "accept", "accept-draw":
			actions = append(actions, game.AcceptDraw())
		default:
			if san, ok := strings.CutSuffix(token, drawOfferSuffix); ok {
				actions = append(actions, game.OfferDraw(san))
			} else {
				actions = append(actions, game.MakeMove(token))
			}
		}
	}
	return actions
}

// reportGame prints the position and state of g.
func (a *app) reportGame(g *game.Game) {
	board := g.Board()
	fmt.Fprintf(a.out, "FEN: %s\n", g.FEN())
	if history := g.History(); len(history) > 0 {
		fmt.Fprintf(a.out, "Moves: %s\n", strings.Join(history, " "))
	}
	fmt.Fprintf(a.out, "Status: %s\n", g.Status())
	if g.Status().IsOver() {
		fmt.Fprintf(a.out, "Result: %s\n", g.Status().Result())
		return
	}
	fmt.Fprintf(a.out, "To move: %s\n", g.TurnColour())
	if engine.IsInCheck(&board, board.ToMove) {
		fmt.Fprintln(a.out, "Check")
	}
	if g.DrawOffered() {
		fmt.Fprintln(a.out, "Draw offered")
	}
	if engine.HasInsufficientMaterial(&board) {
		fmt.Fprintln(a.out, "Insufficient material")
	}
}

// perft prints the leaf count of board at depth.
func (a *app) perft(board *chess.Board, depth int) {
	start := time.Now()
	nodes := engine.Perft(board, depth)
	a.logger.Info("perft finished", "depth", depth, "nodes", nodes, "elapsed", time.Since(start))
	fmt.Fprintf(a.out, "Nodes: %d\n", nodes)
}

// divide prints the leaf count under each root move and the total.
func (a *app) divide(board *chess.Board, depth int) {
	var total uint64
	for _, mc := range engine.Divide(board, depth) {
		fmt.Fprintf(a.out, "%s: %d\n", notation.EncodeUCI(mc.Move), mc.Nodes)
		total += mc.Nodes
	}
	fmt.Fprintf(a.out, "\nNodes: %d\n", total)
}

// analyzer builds the position analyzer from the search settings.
func (a *app) analyzer() worker.Analyzer {
	policy, _ := a.cfg.Search.MovePolicy() // validated with the config
	return worker.Analyzer{Policy: policy, Depth: a.cfg.Search.Depth, Seed: a.cfg.Search.Seed}
}

// best prints the move the configured policy chooses in g's position.
func (a *app) best(g *game.Game) {
	result := a.analyzer().Process(worker.WorkItem{FEN: g.FEN()})
	if !result.Found {
		fmt.Fprintln(a.out, "No legal moves")
		return
	}
	fmt.Fprintf(a.out, "Move: %s (%s) score %d\n", result.SAN, notation.EncodeUCI(result.Move), result.Score)
}

// analyzeFile analyses every position in the file at path.
func (a *app) analyzeFile(ctx context.Context, path string) error {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	fens, err := readFENs(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return a.analyze(ctx, fens)
}

// readFENs returns the non-empty lines of r, skipping # comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// analyze runs the analyzer over fens on the worker pool and prints one
// tab separated line per position.
func (a *app) analyze(ctx context.Context, fens []string) error {
	start := time.Now()
	results := worker.Run(ctx, fens, a.analyzer().Process, a.cfg.Analysis.StopOnError,
		worker.WithWorkers(a.cfg.Analysis.Workers),
		worker.WithLogger(a.logger),
	)

	failed := 0
	for _, r := range results {
		switch {
		case r.Error != nil:
			failed++
			fmt.Fprintf(a.out, "%d\t%s\terror: %v\n", r.Index+1, r.FEN, r.Error)
		case r.Outcome != "":
			fmt.Fprintf(a.out, "%d\t%s\t%s\n", r.Index+1, r.FEN, r.Outcome)
		case r.Found:
			fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\t%d\n", r.Index+1, r.FEN, r.SAN, notation.EncodeUCI(r.Move), r.Score)
		}
	}

	a.logger.Info("analysis finished",
		"positions", len(fens), "analysed", len(results), "failed", failed,
		"workers", a.cfg.Analysis.Workers, "elapsed", time.Since(start))

	if failed > 0 {
		return fmt.Errorf("%d of %d positions failed", failed, len(fens))
	}
	return ctx.Err()
}
