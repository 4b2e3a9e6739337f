package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"evosim/gene"
)

// SaveGenomeJSON writes genome to path as a JSON array of decimal gene
// values, for offline inspection of e.g. the fittest survivor of a run.
// It round-trips one genome, never a population.
func SaveGenomeJSON(path string, genome []gene.Gene) error {
	words := make([]uint64, len(genome))
	for i, g := range genome {
		words[i] = uint64(g)
	}

	data, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshal genome: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("storage: write %s: %w", path, err)
	}
	return nil
}

// LoadGenomeJSON reads a genome previously written by SaveGenomeJSON.
func LoadGenomeJSON(path string) ([]gene.Gene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}

	var words []uint64
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("storage: unmarshal genome from %s: %w", path, err)
	}

	genome := make([]gene.Gene, len(words))
	for i, w := range words {
		genome[i] = gene.Gene(w)
	}
	return genome, nil
}
