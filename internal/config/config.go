// Package config loads tool configuration from an HCL file. A missing file
// is not an error; every setting has a default so the tools run unconfigured.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/omaha-odds/internal/ladder"
)

// Config is the complete tool configuration.
type Config struct {
	Game       *GameConfig       `hcl:"game,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Server     *ServerConfig     `hcl:"server,block"`
}

// GameConfig parameterizes the deck and the table.
type GameConfig struct {
	Players     int `hcl:"players,optional"`
	Ranks       int `hcl:"ranks,optional"`
	Suits       int `hcl:"suits,optional"`
	BoardSize   int `hcl:"board_size,optional"`
	HoldingSize int `hcl:"holding_size,optional"`
}

// SimulationConfig controls the random-board trial driver.
type SimulationConfig struct {
	Trials  int `hcl:"trials,optional"`
	Workers int `hcl:"workers,optional"`
}

// ServerConfig holds the WebSocket server settings.
type ServerConfig struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// Default returns the standard six-player Omaha configuration.
func Default() *Config {
	return &Config{
		Game: &GameConfig{
			Players:     6,
			Ranks:       13,
			Suits:       4,
			BoardSize:   5,
			HoldingSize: 4,
		},
		Simulation: &SimulationConfig{
			Trials:  10000,
			Workers: 0, // one per CPU
		},
		Server: &ServerConfig{
			Address: "localhost",
			Port:    8080,
		},
	}
}

// Load reads configuration from an HCL file, filling in defaults for any
// block or setting the file omits. A nonexistent file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if config.Game == nil {
		config.Game = defaults.Game
	} else {
		if config.Game.Players == 0 {
			config.Game.Players = defaults.Game.Players
		}
		if config.Game.Ranks == 0 {
			config.Game.Ranks = defaults.Game.Ranks
		}
		if config.Game.Suits == 0 {
			config.Game.Suits = defaults.Game.Suits
		}
		if config.Game.BoardSize == 0 {
			config.Game.BoardSize = defaults.Game.BoardSize
		}
		if config.Game.HoldingSize == 0 {
			config.Game.HoldingSize = defaults.Game.HoldingSize
		}
	}
	if config.Simulation == nil {
		config.Simulation = defaults.Simulation
	} else if config.Simulation.Trials == 0 {
		config.Simulation.Trials = defaults.Simulation.Trials
	}
	if config.Server == nil {
		config.Server = defaults.Server
	} else {
		if config.Server.Address == "" {
			config.Server.Address = defaults.Server.Address
		}
		if config.Server.Port == 0 {
			config.Server.Port = defaults.Server.Port
		}
	}

	return &config, nil
}

// Rules converts the game block into ladder rules.
func (c *Config) Rules() ladder.Rules {
	return ladder.Rules{
		NumRanks:    c.Game.Ranks,
		NumSuits:    c.Game.Suits,
		BoardSize:   c.Game.BoardSize,
		HoldingSize: c.Game.HoldingSize,
		NumPlayers:  c.Game.Players,
	}
}

// Validate checks the configuration for values no evaluation can work with.
func (c *Config) Validate() error {
	if c.Game.Players < 2 {
		return fmt.Errorf("players must be at least 2, got %d", c.Game.Players)
	}
	if c.Game.Ranks < 5 {
		return fmt.Errorf("ranks must be at least 5 for straight detection, got %d", c.Game.Ranks)
	}
	if c.Game.Suits < 1 {
		return fmt.Errorf("suits must be at least 1, got %d", c.Game.Suits)
	}
	if c.Game.BoardSize < 1 {
		return fmt.Errorf("board size must be positive, got %d", c.Game.BoardSize)
	}
	if c.Game.HoldingSize < 2 {
		return fmt.Errorf("holding size must be at least 2, got %d", c.Game.HoldingSize)
	}
	deckSize := c.Game.Ranks * c.Game.Suits
	if needed := c.Game.BoardSize + c.Game.HoldingSize + 2; deckSize < needed {
		return fmt.Errorf("deck of %d cards cannot cover a %d-card board and a %d-card holding",
			deckSize, c.Game.BoardSize, c.Game.HoldingSize)
	}
	if c.Simulation.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Simulation.Workers)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	return nil
}

// ListenAddress returns the host:port the server binds to.
func (s *ServerConfig) ListenAddress() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}
