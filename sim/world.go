// Package sim drives the simulation: per-tick perception/action over the
// grid, and, at generation boundaries, survivor selection and breeding.
// The repeated-invocation loop that decides overall run length lives
// outside this package, in cli.
package sim

import (
	"errors"

	"evosim/actuator"
	"evosim/brain"
	"evosim/common"
	"evosim/creature"
	"evosim/gene"
	"evosim/grid"
	"evosim/neuron"
	"evosim/sensor"
)

// ErrExtinct is returned by Step when a generation boundary finds zero
// survivors. The caller should stop advancing this World; it is not a
// programming error.
var ErrExtinct = errors.New("sim: population extinct")

// Config holds the static, per-run parameters: grid dimensions, population
// size, generation length, genome length and mutation rate.
type Config struct {
	Width, Height int
	MaxCreatures  int
	MaxSteps      int
	GenomeLength  int
	MutationRate  float64
}

// World owns the grid and the fixed-size creature array, and advances both
// one tick at a time via Step.
type World struct {
	Cfg       Config
	Grid      *grid.Grid
	Creatures []*creature.Creature
	Banks     neuron.Banks
	RNG       common.RNG

	// LastSample holds a survivor's brain from the most recent generation
	// boundary, for telemetry callers that want to dump one creature's
	// neuron/connection list. Nil before the first boundary or after an
	// extinction.
	LastSample *brain.Brain

	byID map[creature.ID]*creature.Creature
}

// NewWorld allocates a grid of the configured size and spawns an initial
// population with random genomes, capping population at Width*Height cells
// when MaxCreatures would overflow the grid.
func NewWorld(cfg Config, banks neuron.Banks, rng common.RNG) *World {
	w := &World{
		Cfg:   cfg,
		Grid:  grid.New(cfg.Width, cfg.Height),
		Banks: banks,
		RNG:   rng,
		byID:  make(map[creature.ID]*creature.Creature),
	}

	count := cfg.MaxCreatures
	if cap := cfg.Width * cfg.Height; count > cap {
		count = cap
	}
	w.Grid.MaxCreatures = count

	w.Creatures = make([]*creature.Creature, count)
	for i := 0; i < count; i++ {
		id := creature.ID(i + 1)
		genome := randomGenome(cfg.GenomeLength, rng)
		x, y := w.Grid.RandomFreeCell(rng)
		c := &creature.Creature{
			ID:     id,
			X:      x,
			Y:      y,
			Genome: genome,
			Brain:  brain.Build(genome, banks),
			Energy: 100,
		}
		w.Creatures[i] = c
		w.byID[id] = c
		w.Grid.SetOccupant(x, y, uint32(id))
	}
	return w
}

// randomGenome draws a GenomeLength-long random genome, one 64-bit gene at
// a time assembled from four 16-bit draws (common.RNG exposes no uint64
// source directly).
func randomGenome(length int, rng common.RNG) []gene.Gene {
	genome := make([]gene.Gene, length)
	for i := range genome {
		var word uint64
		for chunk := 0; chunk < 4; chunk++ {
			word = word<<16 | uint64(rng.Intn(1<<16))
		}
		genome[i] = gene.Gene(word)
	}
	return genome
}

// Step advances the simulation by one tick: it increments the tick
// counter, dispatches every creature alive at tick start exactly once in
// row-major cell order, and, once the tick counter reaches MaxSteps, runs
// the generation boundary and resets it. It returns ErrExtinct if that
// generation boundary finds no survivors.
func (w *World) Step() error {
	w.Grid.Tick++
	w.runTick()

	if int(w.Grid.Tick) >= w.Cfg.MaxSteps {
		w.Grid.Tick = 0
		return w.generationBoundary()
	}
	return nil
}

// runTick snapshots the creature ids occupying the grid at tick start
// (row-major) and updates each exactly once, so that an actuator-induced
// move into an unvisited cell doesn't cause a second dispatch within the
// same tick.
func (w *World) runTick() {
	var alive []creature.ID
	w.Grid.Each(func(x, y int) {
		if w.Grid.Occupied(x, y) {
			alive = append(alive, creature.ID(w.Grid.Cell(x, y).CreatureID))
		}
	})

	for _, id := range alive {
		c, ok := w.byID[id]
		if !ok {
			continue
		}
		w.updateCreature(c)
	}
}

// updateCreature ages c, charges its upkeep, senses, propagates, and acts.
func (w *World) updateCreature(c *creature.Creature) {
	if !c.Alive() {
		w.Grid.ClearOccupant(c.X, c.Y)
		return
	}

	c.Age++
	c.Energy -= 0.01

	for _, idx := range c.Brain.Sensory {
		n := &c.Brain.Neurons[idx]
		n.Data = sensor.Sense(n.ID, c.X, c.Y, w.Grid)
	}

	c.Brain.Propagate()

	idx, fires := c.Brain.WinningAction()
	if fires {
		actuator.Act(c.Brain.Neurons[idx].ID, w.Grid, c, w.RNG)
	}
}
