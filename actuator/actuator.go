// Package actuator translates a winning action neuron id into a grid
// mutation: moving the acting creature, or doing nothing if the move is
// blocked.
package actuator

import (
	"evosim/common"
	"evosim/creature"
	"evosim/grid"
	"evosim/neuron"
)

// Act resolves action_id M_r to a uniformly chosen move direction first;
// any other action id outside the eight move
// directions is a no-op. A move succeeds only if the destination lies
// inside the grid and is unoccupied, in which case the origin cell is
// cleared, the destination is claimed, and c's position is updated. It
// reports whether a move was performed.
func Act(actionID neuron.ID, g *grid.Grid, c *creature.Creature, rng common.RNG) bool {
	if actionID == neuron.M_r {
		actionID = neuron.M_n + neuron.ID(rng.Intn(8))
	}
	if actionID < neuron.M_n || actionID > neuron.M_nw {
		return false
	}

	d := grid.Direction(actionID - neuron.M_n)
	nx, ny := d.Step(c.X, c.Y)
	if !g.InBounds(nx, ny) || g.Occupied(nx, ny) {
		return false
	}

	g.ClearOccupant(c.X, c.Y)
	g.SetOccupant(nx, ny, uint32(c.ID))
	c.X, c.Y = nx, ny
	return true
}
