package equity

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/omaha-odds/internal/deck"
	"github.com/lox/omaha-odds/internal/ladder"
	"github.com/lox/omaha-odds/internal/randutil"
)

const progressInterval = 250 * time.Millisecond

// SimulatorConfig holds configuration for a trial run.
type SimulatorConfig struct {
	Rules  ladder.Rules
	Trials int
	// Workers caps the parallelism; 0 means one worker per CPU, capped at 8.
	Workers int
	Seed    int64
	Logger  *log.Logger
	// Clock drives progress reporting; tests inject a quartz mock.
	Clock quartz.Clock
	// OnProgress, when set, is called periodically with the number of
	// completed trials and the running average utility, and once more with
	// the final totals before Run returns.
	OnProgress func(done int, avg float64)
}

// Simulator estimates a holding's average utility over many random boards.
// Boards are dealt uniformly from the deck minus the holding; each trial is
// an independent full evaluation, so trials parallelize freely.
type Simulator struct {
	config SimulatorConfig
	calc   *Calculator
}

// NewSimulator creates a simulator with the given configuration.
func NewSimulator(config SimulatorConfig) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
		if config.Workers > 8 {
			config.Workers = 8
		}
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{
		config: config,
		calc:   NewCalculator(config.Rules),
	}
}

// Run deals Trials random boards avoiding the holding and returns the
// average utility across them.
func (s *Simulator) Run(ctx context.Context, holding []deck.Card) (float64, error) {
	if err := ladder.ValidateHolding(s.config.Rules, holding, nil); err != nil {
		return 0, err
	}
	if s.config.Trials <= 0 {
		return 0, fmt.Errorf("trials must be positive, got %d", s.config.Trials)
	}

	workers := s.config.Workers
	if workers > s.config.Trials {
		workers = s.config.Trials
	}

	s.config.Logger.Debug("starting trial run",
		"holding", fmt.Sprint(holding), "trials", s.config.Trials, "workers", workers)

	acc := &accumulator{}

	progCtx, progCancel := context.WithCancel(ctx)
	defer progCancel()
	var progWG sync.WaitGroup
	if s.config.OnProgress != nil {
		progWG.Add(1)
		go func() {
			defer progWG.Done()
			ticker := s.config.Clock.NewTicker(progressInterval)
			defer ticker.Stop()
			for {
				select {
				case <-progCtx.Done():
					return
				case <-ticker.C:
					done, avg := acc.snapshot()
					s.config.OnProgress(done, avg)
				}
			}
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	perWorker := s.config.Trials / workers
	remainder := s.config.Trials % workers
	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		worker := w
		g.Go(func() error {
			return s.runWorker(gctx, worker, trials, holding, acc)
		})
	}

	err := g.Wait()
	progCancel()
	progWG.Wait()
	if err != nil {
		return 0, err
	}

	done, avg := acc.snapshot()
	if s.config.OnProgress != nil {
		s.config.OnProgress(done, avg)
	}
	s.config.Logger.Debug("trial run complete", "trials", done, "avg", avg)
	return avg, nil
}

// runWorker evaluates its share of trials with an independent RNG and deck,
// so workers never contend and runs stay reproducible for a fixed seed.
func (s *Simulator) runWorker(ctx context.Context, worker, trials int, holding []deck.Card, acc *accumulator) error {
	rng := randutil.NewWorker(s.config.Seed, worker)
	d := deck.New(s.config.Rules.NumRanks, s.config.Rules.NumSuits, rng)

	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		board := d.DealAvoiding(s.config.Rules.BoardSize, holding)
		if board == nil {
			return fmt.Errorf("deck too small to deal a %d-card board", s.config.Rules.BoardSize)
		}
		utility, err := s.calc.Utility(holding, board)
		if err != nil {
			return fmt.Errorf("trial evaluation failed on board %v: %w", board, err)
		}
		acc.add(utility)
	}
	return nil
}

// accumulator tracks completed trials and their utility sum across workers.
type accumulator struct {
	mu   sync.Mutex
	sum  float64
	done int
}

func (a *accumulator) add(utility float64) {
	a.mu.Lock()
	a.sum += utility
	a.done++
	a.mu.Unlock()
}

func (a *accumulator) snapshot() (int, float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done == 0 {
		return 0, 0
	}
	return a.done, a.sum / float64(a.done)
}
