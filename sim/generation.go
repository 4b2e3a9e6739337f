package sim

import (
	"evosim/brain"
	"evosim/creature"
	"evosim/evo"
	"evosim/gene"
)

// generationBoundary selects survivors, breeds exactly len(Creatures)
// offspring from them, and repopulates the grid.
func (w *World) generationBoundary() error {
	survivors := w.survivors()
	w.Grid.LastGenSurvivors = len(survivors)
	w.Grid.Generation++
	if len(survivors) == 0 {
		w.Grid.LastGenMeanEnergy = 0
		w.Grid.LastGenMeanAge = 0
		w.LastSample = nil
		return ErrExtinct
	}

	var totalEnergy, totalAge float64
	for _, s := range survivors {
		totalEnergy += float64(s.Energy)
		totalAge += float64(s.Age)
	}
	w.Grid.LastGenMeanEnergy = totalEnergy / float64(len(survivors))
	w.Grid.LastGenMeanAge = totalAge / float64(len(survivors))
	w.LastSample = survivors[0].Brain

	// Breed every offspring from untouched survivor genomes before
	// installing any of them: survivors are themselves elements of
	// w.Creatures, so resetting a creature in this same loop would make
	// later offspring sample an already-overwritten child genome instead
	// of its generation-N parent.
	type offspring struct {
		genome []gene.Gene
		brain  *brain.Brain
	}
	bred := make([]offspring, len(w.Creatures))
	for i := range w.Creatures {
		parent1 := survivors[w.RNG.Intn(len(survivors))]
		parent2 := survivors[w.RNG.Intn(len(survivors))]

		child := evo.Crossover(parent1.Genome, parent2.Genome, w.RNG)
		evo.Mutate(child, w.Cfg.MutationRate, w.RNG)
		bred[i] = offspring{genome: child, brain: brain.Build(child, w.Banks)}
	}

	for i, c := range w.Creatures {
		// The previous genome/brain go out of scope here, released by the
		// garbage collector; Reset never leaves c half-replaced since it
		// overwrites every owned field in one call.
		c.Reset(bred[i].genome, bred[i].brain, 0, 0)
	}

	w.repopulate()
	return nil
}

// survivors returns the creatures that are alive and in the upper half of
// the grid.
func (w *World) survivors() []*creature.Creature {
	var out []*creature.Creature
	for _, c := range w.Creatures {
		if c.Energy > 0 && c.Y < w.Grid.Height/2 {
			out = append(out, c)
		}
	}
	return out
}

// repopulate clears the grid and places every creature in a fresh,
// uniformly chosen free cell. Clearing first keeps the
// occupied<=>occupant_id invariant intact across generation boundaries:
// leaving stale occupancy from the outgoing generation in place would
// produce phantom occupied cells with no live occupant.
func (w *World) repopulate() {
	for y := 0; y < w.Grid.Height; y++ {
		for x := 0; x < w.Grid.Width; x++ {
			w.Grid.ClearOccupant(x, y)
		}
	}
	for _, c := range w.Creatures {
		x, y := w.Grid.RandomFreeCell(w.RNG)
		c.X, c.Y = x, y
		w.Grid.SetOccupant(x, y, uint32(c.ID))
	}
}
