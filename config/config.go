// Package config provides types and functions for managing application
// configuration: simulation parameters and command-line settings, loaded
// from defaults, an optional TOML file, and CLI flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
)

const (
	// ModeRun instructs the application to run the evolutionary simulation.
	ModeRun = "run"
	// ModeLogUtil instructs the application to export telemetry from a
	// SQLite database produced by a previous run.
	ModeLogUtil = "logutil"
)

// SimParams holds the parameters that govern one simulation run: grid
// geometry, population size, generation length, genome length, and the
// mutation rate. All of them are static per run.
type SimParams struct {
	Width        int     // grid width, in cells
	Height       int     // grid height, in cells
	MaxCreatures int     // population size maintained every generation
	MaxSteps     int     // ticks per generation before the boundary fires
	GenomeLength int     // number of genes per genome (G)
	MutationRate float64 // per-genome mutation probability
}

// DefaultSimParams returns the parameters a bare `run` invocation uses
// absent a TOML file or flags.
func DefaultSimParams() SimParams {
	return SimParams{
		Width:        64,
		Height:       64,
		MaxCreatures: 200,
		MaxSteps:     200,
		GenomeLength: 32,
		MutationRate: 0.0001,
	}
}

// CLIConfig holds the settings that come from the command line rather than
// the simulation's own parameters: which mode to run, the PRNG seed,
// how many generations to advance, where to write telemetry, and the
// logutil export subcommand's own flags.
type CLIConfig struct {
	Mode        string
	Seed        int64
	Generations int
	TelemetryDir string
	DbPath      string

	LogUtilDbPath string
	LogUtilTable  string
	LogUtilFormat string
	LogUtilOutput string
}

// AppConfig is the fully resolved configuration for one invocation.
type AppConfig struct {
	Sim SimParams
	Cli CLIConfig
}

// Validate enforces the cross-field invariants a bare struct literal can't:
// positive dimensions, a genome length that can actually carry a gene, a
// mutation rate expressed as a probability, and mode-specific requirements.
// It never mutates ac.
func (ac *AppConfig) Validate() error {
	switch ac.Cli.Mode {
	case ModeRun:
		return ac.validateRun()
	case ModeLogUtil:
		return ac.validateLogUtil()
	default:
		return fmt.Errorf("config: unknown mode %q", ac.Cli.Mode)
	}
}

func (ac *AppConfig) validateRun() error {
	s := ac.Sim
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("config: width and height must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.MaxCreatures <= 0 {
		return fmt.Errorf("config: maxCreatures must be positive, got %d", s.MaxCreatures)
	}
	if s.MaxSteps <= 0 {
		return fmt.Errorf("config: maxSteps must be positive, got %d", s.MaxSteps)
	}
	if s.GenomeLength <= 0 {
		return fmt.Errorf("config: genomeLength must be positive, got %d", s.GenomeLength)
	}
	if s.MutationRate < 0 || s.MutationRate > 1 {
		return fmt.Errorf("config: mutationRate must be in [0,1], got %v", s.MutationRate)
	}
	if ac.Cli.Generations <= 0 {
		return fmt.Errorf("config: generations must be positive, got %d", ac.Cli.Generations)
	}
	if s.MaxCreatures > s.Width*s.Height {
		fmt.Printf("config: notice: maxCreatures (%d) exceeds grid capacity (%d); spawning will be capped\n",
			s.MaxCreatures, s.Width*s.Height)
	}
	return nil
}

func (ac *AppConfig) validateLogUtil() error {
	if ac.Cli.LogUtilDbPath == "" {
		return fmt.Errorf("config: logutil export requires --dbPath")
	}
	if ac.Cli.LogUtilTable == "" {
		return fmt.Errorf("config: logutil export requires --table")
	}
	if ac.Cli.LogUtilFormat != "csv" {
		return fmt.Errorf("config: unsupported logutil export format %q, only \"csv\" is supported", ac.Cli.LogUtilFormat)
	}
	return nil
}
