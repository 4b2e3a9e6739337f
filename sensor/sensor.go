// Package sensor translates a sensory neuron id and a creature's position
// into the scalar value that neuron is loaded with each tick.
package sensor

import (
	"math"

	"evosim/grid"
	"evosim/neuron"
)

// NoData is returned for any sensory id outside the known roster; the tick
// driver treats it as "nothing to write".
const NoData = -math.MaxFloat64

// Sense reads the fixed sensory roster: eight "look" directions (is the
// adjacent cell occupied?) and eight "look for wall" directions (distance
// to the nearest wall).
func Sense(id neuron.ID, x, y int, g *grid.Grid) float64 {
	switch {
	case id >= neuron.L_n && id <= neuron.L_nw:
		return look(grid.Direction(id-neuron.L_n), x, y, g)
	case id >= neuron.LW_n && id <= neuron.LW_nw:
		return lookForWall(grid.Direction(id-neuron.LW_n), x, y, g)
	default:
		return NoData
	}
}

// look reads the single cell one step from (x, y) in d. 0.0 unoccupied,
// -1.0 occupied, -2.0 off-grid. No normalization is applied.
func look(d grid.Direction, x, y int, g *grid.Grid) float64 {
	nx, ny := d.Step(x, y)
	if !g.InBounds(nx, ny) {
		return -2.0
	}
	if g.Occupied(nx, ny) {
		return -1.0
	}
	return 0.0
}

// lookForWall walks from (x, y) in d, counting steps, until it finds a
// walled cell or leaves the grid. The raw step count is then normalized to
// 1/d for d > 0 (an immediately adjacent wall reads as 1.0, a distant one
// as a small positive number). Only in-bounds cells are counted, so a
// creature on the grid edge looking off-grid gets a raw distance of 0, which
// is returned unchanged.
func lookForWall(d grid.Direction, x, y int, g *grid.Grid) float64 {
	cx, cy := x, y
	steps := 0
	for {
		cx, cy = d.Step(cx, cy)
		if !g.InBounds(cx, cy) {
			break
		}
		steps++
		if g.Cell(cx, cy).Flags.Has(grid.FlagWall) {
			break
		}
	}
	raw := float64(steps)
	if raw > 0 {
		return 1.0 / raw
	}
	return raw
}
