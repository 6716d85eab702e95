package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/omaha-odds/internal/config"
	"github.com/lox/omaha-odds/internal/deck"
	"github.com/lox/omaha-odds/internal/display"
	"github.com/lox/omaha-odds/internal/equity"
	"github.com/lox/omaha-odds/internal/ladder"
	"github.com/lox/omaha-odds/internal/server"
	"github.com/lox/omaha-odds/internal/tui"
)

var CLI struct {
	Config  string `short:"c" default:"omaha-odds.hcl" help:"Path to HCL configuration file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Odds     OddsCmd     `cmd:"" help:"Expected pot share for a holding on a board"`
	Ladder   LadderCmd   `cmd:"" help:"Print the couplet strength ladder for a board"`
	Simulate SimulateCmd `cmd:"" help:"Average a holding's equity over random boards"`
	Serve    ServeCmd    `cmd:"" help:"Serve equity queries over WebSocket"`
}

// Context carries the loaded configuration into command Run methods.
type Context struct {
	Config *config.Config
	Logger *log.Logger
	Rules  ladder.Rules
}

func (c *Context) renderer(plain bool) *display.Renderer {
	if plain {
		return display.NewPlain()
	}
	return display.New()
}

type OddsCmd struct {
	Holding string `arg:"" help:"Holding cards, e.g. 'AdKhQcJs'"`
	Board   string `arg:"" help:"Board cards, e.g. 'AhAsKd7c2h'"`
	Players int    `short:"p" help:"Players at the table (overrides config)"`
	Plain   bool   `help:"Disable colored output"`
}

func (c *OddsCmd) Run(ctx *Context) error {
	holding, err := deck.ParseCards(c.Holding)
	if err != nil {
		return fmt.Errorf("bad holding: %w", err)
	}
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("bad board: %w", err)
	}

	rules := ctx.Rules
	if c.Players > 0 {
		rules.NumPlayers = c.Players
	}

	res, err := equity.NewCalculator(rules).Evaluate(holding, board)
	if err != nil {
		return err
	}
	return ctx.renderer(c.Plain).Result(os.Stdout, holding, board, res)
}

type LadderCmd struct {
	Board     string `arg:"" help:"Board cards, e.g. 'AhAsKd7c2h'"`
	MaxLevels int    `short:"m" default:"15" help:"Levels to show (0 for all)"`
	Plain     bool   `help:"Disable colored output"`
}

func (c *LadderCmd) Run(ctx *Context) error {
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("bad board: %w", err)
	}
	concrete, err := ladder.RankLadder(ctx.Rules, board)
	if err != nil {
		return err
	}
	return ctx.renderer(c.Plain).Ladder(os.Stdout, concrete, c.MaxLevels)
}

type SimulateCmd struct {
	Holding string `arg:"" help:"Holding cards, e.g. 'AdKhQcJs'"`
	Trials  int    `short:"n" help:"Number of random boards (overrides config)"`
	Workers int    `short:"w" help:"Parallel workers (overrides config)"`
	Seed    *int64 `help:"Random seed for reproducible runs"`
	Plain   bool   `help:"Print the result without the progress UI"`
}

func (c *SimulateCmd) Run(ctx *Context) error {
	holding, err := deck.ParseCards(c.Holding)
	if err != nil {
		return fmt.Errorf("bad holding: %w", err)
	}

	cfg := equity.SimulatorConfig{
		Rules:   ctx.Rules,
		Trials:  ctx.Config.Simulation.Trials,
		Workers: ctx.Config.Simulation.Workers,
		Logger:  ctx.Logger,
	}
	if c.Trials > 0 {
		cfg.Trials = c.Trials
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	} else {
		cfg.Seed = time.Now().UnixNano()
	}

	if c.Plain {
		avg, err := equity.NewSimulator(cfg).Run(context.Background(), holding)
		if err != nil {
			return err
		}
		fmt.Printf("%.4f\n", avg)
		return nil
	}
	return c.runWithProgress(ctx, cfg, holding)
}

// runWithProgress drives the simulator under a Bubble Tea progress bar,
// feeding it snapshots from the simulator's progress callback.
func (c *SimulateCmd) runWithProgress(ctx *Context, cfg equity.SimulatorConfig, holding []deck.Card) error {
	renderer := ctx.renderer(false)
	program := tea.NewProgram(tui.New(renderer.Cards(holding), cfg.Trials))

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg.OnProgress = func(done int, avg float64) {
		program.Send(tui.ProgressMsg{Done: done, Avg: avg})
	}
	sim := equity.NewSimulator(cfg)

	go func() {
		avg, err := sim.Run(runCtx, holding)
		program.Send(tui.DoneMsg{Avg: avg, Err: err})
	}()

	final, err := program.Run()
	cancel()
	if err != nil {
		return err
	}
	model := final.(tui.Model)
	if model.Err() != nil {
		return model.Err()
	}
	fmt.Printf("average equity over %d boards: %.2f%%\n", cfg.Trials, model.Average()*100)
	return nil
}

type ServeCmd struct {
	Addr string `short:"a" help:"Address to bind to (overrides config)"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	addr := ctx.Config.Server.ListenAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	srv := server.NewServer(addr, ctx.Rules, ctx.Logger)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		ctx.Logger.Info("shutting down")
		srv.Stop()
		os.Exit(0)
	}()

	return srv.Start()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("omaha-odds"),
		kong.Description("Couplet-ladder equity calculator for Omaha boards"))

	logger := log.New(os.Stderr)
	if CLI.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		ctx.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		ctx.Exit(1)
	}

	err = ctx.Run(&Context{Config: cfg, Logger: logger, Rules: cfg.Rules()})
	ctx.FatalIfErrorf(err)
}
