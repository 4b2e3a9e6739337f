// Package storage implements the ambient persistence and telemetry layer
// around the simulation core: CSV exports, SQLite generation logging, and
// single-genome JSON snapshots, plus the readers LoadGenomeJSON and
// ExportLogData. Nothing in this package is read back into a live sim.World.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"evosim/brain"
	"evosim/grid"
	"evosim/neuron"
)

// WriteNeuronsCSV writes one row per neuron of b to path, in
// "Index,Type,ID,Label" format, for a sampled survivor's brain.
func WriteNeuronsCSV(path string, b *brain.Brain) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Index", "Type", "ID", "Label"}); err != nil {
		return fmt.Errorf("storage: write neurons header: %w", err)
	}
	for i, n := range b.Neurons {
		record := []string{
			strconv.Itoa(i),
			n.Role.String(),
			strconv.Itoa(int(n.ID)),
			neuron.Label(n.ID),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("storage: write neuron row: %w", err)
		}
	}
	return w.Error()
}

// WriteConnectionsCSV writes one row per connection of b to path, in the
// "SourceID,TargetID,Weight,ActivationFunction" format.
func WriteConnectionsCSV(path string, b *brain.Brain) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"SourceID", "TargetID", "Weight", "ActivationFunction"}); err != nil {
		return fmt.Errorf("storage: write connections header: %w", err)
	}
	for _, n := range b.Neurons {
		for _, c := range n.Out {
			record := []string{
				strconv.Itoa(int(n.ID)),
				strconv.Itoa(int(c.Dest)),
				strconv.FormatFloat(c.Weight, 'f', -1, 64),
				strconv.Itoa(int(c.Activation)),
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("storage: write connection row: %w", err)
			}
		}
	}
	return w.Error()
}

// WriteGridCSV dumps g to path, one row per cell in row-major order, header
// "X,Y,Occupied,Food,Poison,Wall,Sunlit,Water,CreatureID".
func WriteGridCSV(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"X", "Y", "Occupied", "Food", "Poison", "Wall", "Sunlit", "Water", "CreatureID"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("storage: write grid header: %w", err)
	}

	var writeErr error
	g.Each(func(x, y int) {
		if writeErr != nil {
			return
		}
		c := g.Cell(x, y)
		record := []string{
			strconv.Itoa(x),
			strconv.Itoa(y),
			boolBit(c.Flags.Has(grid.FlagOccupied)),
			boolBit(c.Flags.Has(grid.FlagFood)),
			boolBit(c.Flags.Has(grid.FlagPoison)),
			boolBit(c.Flags.Has(grid.FlagWall)),
			boolBit(c.Flags.Has(grid.FlagSunlit)),
			boolBit(c.Flags.Has(grid.FlagWater)),
			strconv.Itoa(int(c.CreatureID)),
		}
		writeErr = w.Write(record)
	})
	if writeErr != nil {
		return fmt.Errorf("storage: write grid row: %w", writeErr)
	}
	return w.Error()
}

func boolBit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
