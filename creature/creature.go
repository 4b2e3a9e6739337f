// Package creature owns the per-agent state the simulation tracks: its
// position, its brain, its genome, and its energy/age lifecycle.
package creature

import (
	"evosim/brain"
	"evosim/common"
	"evosim/gene"
)

// ID is a creature's stable grid occupant tag. Zero is reserved to mean
// "no creature" (see grid.Cell's Occupied/CreatureID invariant).
type ID uint32

// Creature is one agent: a position on the grid, an owned genome and
// brain, and its energy/age/generation bookkeeping. A creature exclusively
// owns its Genome and Brain; nothing else aliases them.
type Creature struct {
	ID         ID
	X, Y       int
	Genome     []gene.Gene
	Brain      *brain.Brain
	Energy     common.Energy
	Age        uint64
	Generation common.Generation
}

// Alive reports whether the creature still has a brain and positive
// energy; a dead or brainless creature is vacated from the grid rather
// than updated.
func (c *Creature) Alive() bool {
	return c.Brain != nil && c.Energy > 0
}

// Reset reinstalls a freshly bred genome/brain at generation boundaries:
// energy returns to 100, age to 0, and the generation counter advances.
// The caller is responsible for releasing the creature's previous
// genome/brain before calling Reset and for placing it on the grid
// afterward; Reset itself only updates the creature's own fields.
func (c *Creature) Reset(genome []gene.Gene, b *brain.Brain, x, y int) {
	c.Genome = genome
	c.Brain = b
	c.X, c.Y = x, y
	c.Energy = 100
	c.Age = 0
	c.Generation++
}
