// Package worker provides a worker pool for analysing positions in parallel.
// Each work item is searched independently, so workers share no board state.
package worker

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	FEN   string
	Index int // Original index for tracking
}

// ProcessResult is the outcome of analysing one position.
type ProcessResult struct {
	Index   int
	FEN     string
	Move    chess.Move
	SAN     string
	Score   int
	Found   bool   // False when the side to move had no legal move
	Outcome string // "checkmate", "stalemate" or "" when play can continue
	Elapsed time.Duration
	Error   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of goroutines, each analysing one position at a
// time. Workers share nothing but the channels.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	logger      *slog.Logger
	wg          sync.WaitGroup

	ctx       context.Context
	stopped   atomic.Bool
	processed atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithLogger sets the logger workers report to.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPool creates a pool of one worker with a buffer of 10 and the default
// slog logger, then applies opts.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
		logger:      slog.Default(),
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers. Once ctx is done the pool behaves as if
// Stop had been called.
func (p *Pool) Start(ctx context.Context) {
	p.ctx = ctx
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	log := p.logger.With(slog.Int("worker", id))

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without analysing
		}
		start := time.Now()
		result := p.processFunc(item)
		result.Elapsed = time.Since(start)
		p.processed.Add(1)

		if result.Error != nil {
			log.Warn("analysis failed", slog.Int("index", item.Index), slog.Any("error", result.Error))
		} else {
			log.Debug("analysed position",
				slog.Int("index", item.Index),
				slog.String("move", result.SAN),
				slog.Int("score", result.Score),
				slog.Duration("elapsed", result.Elapsed))
		}
		p.resultChan <- result
	}
}

// Submit queues a position, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a position without blocking. It reports false when the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip the positions still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop was called or the Start context is done.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load() || p.ctx.Err() != nil
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Processed returns how many positions have been analysed so far.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// Run analyses every FEN on a fresh pool and returns the results in input
// order. Positions skipped because ctx ended, or because stopOnError saw a
// failure, are missing from the results.
func Run(ctx context.Context, fens []string, processFunc ProcessFunc, stopOnError bool, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start(ctx)

	go func() {
		for i, fen := range fens {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(fens))
	for result := range pool.Results() {
		if result.Error != nil && stopOnError {
			pool.Stop()
		}
		results = append(results, result)
	}

	if skipped := len(fens) - len(results); skipped > 0 {
		pool.logger.Info("analysis stopped early",
			slog.Int("analysed", len(results)), slog.Int("skipped", skipped),
			slog.Bool("cancelled", ctx.Err() != nil))
	}

	slices.SortFunc(results, func(a, b ProcessResult) int {
		return a.Index - b.Index
	})
	return results
}
