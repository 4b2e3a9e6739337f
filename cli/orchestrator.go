// Package cli wires config, sim and storage together: the tick driver that
// decides how many ticks to run and reports each generation boundary, as
// opposed to sim.World.Step, which implements the boundary itself.
package cli

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"evosim/config"
	"evosim/neuron"
	"evosim/sim"
	"evosim/storage"
)

// Orchestrator runs one simulation end to end: build a World from cfg,
// advance it generation by generation, and persist telemetry along the way.
type Orchestrator struct {
	Cfg *config.AppConfig
}

// NewOrchestrator returns an Orchestrator for cfg.
func NewOrchestrator(cfg *config.AppConfig) *Orchestrator {
	return &Orchestrator{Cfg: cfg}
}

// Run advances the simulation for Cfg.Cli.Generations generations, or until
// extinction, logging to SQLite and/or CSV at each generation boundary when
// configured to do so.
func (o *Orchestrator) Run() error {
	seed := o.Cfg.Cli.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	world := sim.NewWorld(sim.Config{
		Width:        o.Cfg.Sim.Width,
		Height:       o.Cfg.Sim.Height,
		MaxCreatures: o.Cfg.Sim.MaxCreatures,
		MaxSteps:     o.Cfg.Sim.MaxSteps,
		GenomeLength: o.Cfg.Sim.GenomeLength,
		MutationRate: o.Cfg.Sim.MutationRate,
	}, neuron.DefaultBanks, rng)

	var logger *storage.SQLiteLogger
	if o.Cfg.Cli.DbPath != "" {
		var err error
		logger, err = storage.NewSQLiteLogger(o.Cfg.Cli.DbPath)
		if err != nil {
			return fmt.Errorf("cli: open telemetry database: %w", err)
		}
		defer logger.Close()
	}

	totalTicks := o.Cfg.Cli.Generations * o.Cfg.Sim.MaxSteps
	for i := 0; i < totalTicks; i++ {
		err := world.Step()
		if err == sim.ErrExtinct {
			fmt.Printf("generation %d: population extinct, stopping\n", world.Grid.Generation)
			return nil
		}
		if err != nil {
			return fmt.Errorf("cli: step %d: %w", i, err)
		}

		if world.Grid.Tick != 0 {
			continue // not a generation boundary
		}

		fmt.Printf("generation %d: survivors=%d meanEnergy=%.2f meanAge=%.1f\n",
			world.Grid.Generation, world.Grid.LastGenSurvivors,
			world.Grid.LastGenMeanEnergy, world.Grid.LastGenMeanAge)

		if logger != nil {
			if err := logger.LogGeneration(
				world.Grid.Generation, world.Grid.LastGenSurvivors,
				world.Grid.LastGenMeanEnergy, world.Grid.LastGenMeanAge,
				world.LastSample,
			); err != nil {
				return fmt.Errorf("cli: log generation %d: %w", world.Grid.Generation, err)
			}
		}

		if o.Cfg.Cli.TelemetryDir != "" {
			if err := o.writeTelemetry(world); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTelemetry dumps the grid, and, when a sample is available, the
// neuron and connection CSVs for the generation that just completed.
func (o *Orchestrator) writeTelemetry(world *sim.World) error {
	dir := o.Cfg.Cli.TelemetryDir
	gen := world.Grid.Generation

	gridPath := filepath.Join(dir, fmt.Sprintf("grid-gen%04d.csv", gen))
	if err := storage.WriteGridCSV(gridPath, world.Grid); err != nil {
		return fmt.Errorf("cli: write grid telemetry: %w", err)
	}

	if world.LastSample == nil {
		return nil
	}
	neuronsPath := filepath.Join(dir, fmt.Sprintf("neurons-gen%04d.csv", gen))
	if err := storage.WriteNeuronsCSV(neuronsPath, world.LastSample); err != nil {
		return fmt.Errorf("cli: write neurons telemetry: %w", err)
	}
	connectionsPath := filepath.Join(dir, fmt.Sprintf("connections-gen%04d.csv", gen))
	if err := storage.WriteConnectionsCSV(connectionsPath, world.LastSample); err != nil {
		return fmt.Errorf("cli: write connections telemetry: %w", err)
	}
	return nil
}
