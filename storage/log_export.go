package storage

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// ExportLogData opens the SQLite database at dbPath read-only, reads
// tableName, and writes it as CSV to outputPath (or stdout if empty). Valid
// tableNames are "GenerationSnapshots", "SampledNeurons" and
// "SampledConnections"; format must be "csv", the only format this
// exporter supports.
func ExportLogData(dbPath, tableName, format, outputPath string) error {
	if format != "csv" {
		return fmt.Errorf("storage: unsupported format %q, only \"csv\" is supported", format)
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("storage: open %s: %w", dbPath, err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("storage: ping %s: %w", dbPath, err)
	}

	var out io.Writer
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("storage: create %s: %w", outputPath, err)
		}
		defer f.Close()
		out = f
	} else {
		out = os.Stdout
	}
	w := csv.NewWriter(out)
	defer w.Flush()

	switch tableName {
	case "GenerationSnapshots":
		return exportGenerationSnapshots(db, w)
	case "SampledNeurons":
		return exportSampledNeurons(db, w)
	case "SampledConnections":
		return exportSampledConnections(db, w)
	default:
		return fmt.Errorf("storage: unsupported table %q", tableName)
	}
}

func exportGenerationSnapshots(db *sql.DB, w *csv.Writer) error {
	if err := w.Write([]string{"SnapshotID", "RunID", "Generation", "SurvivorCount", "MeanEnergy", "MeanAge"}); err != nil {
		return err
	}
	rows, err := db.Query(`SELECT SnapshotID, RunID, Generation, SurvivorCount, MeanEnergy, MeanAge FROM GenerationSnapshots ORDER BY SnapshotID`)
	if err != nil {
		return fmt.Errorf("storage: query GenerationSnapshots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var snapshotID, generation, survivorCount int64
		var runID string
		var meanEnergy, meanAge float64
		if err := rows.Scan(&snapshotID, &runID, &generation, &survivorCount, &meanEnergy, &meanAge); err != nil {
			return fmt.Errorf("storage: scan GenerationSnapshots row: %w", err)
		}
		record := []string{
			strconv.FormatInt(snapshotID, 10), runID, strconv.FormatInt(generation, 10),
			strconv.FormatInt(survivorCount, 10),
			strconv.FormatFloat(meanEnergy, 'f', -1, 64),
			strconv.FormatFloat(meanAge, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return rows.Err()
}

func exportSampledNeurons(db *sql.DB, w *csv.Writer) error {
	if err := w.Write([]string{"StateID", "SnapshotID", "NeuronIndex", "Type", "NeuronID", "Label"}); err != nil {
		return err
	}
	rows, err := db.Query(`SELECT StateID, SnapshotID, NeuronIndex, Type, NeuronID, Label FROM SampledNeurons ORDER BY StateID`)
	if err != nil {
		return fmt.Errorf("storage: query SampledNeurons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stateID, snapshotID, neuronIndex, neuronID int64
		var typ, label string
		if err := rows.Scan(&stateID, &snapshotID, &neuronIndex, &typ, &neuronID, &label); err != nil {
			return fmt.Errorf("storage: scan SampledNeurons row: %w", err)
		}
		record := []string{
			strconv.FormatInt(stateID, 10), strconv.FormatInt(snapshotID, 10),
			strconv.FormatInt(neuronIndex, 10), typ, strconv.FormatInt(neuronID, 10), label,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return rows.Err()
}

func exportSampledConnections(db *sql.DB, w *csv.Writer) error {
	if err := w.Write([]string{"ConnID", "SnapshotID", "SourceID", "TargetID", "Weight", "ActivationFunction"}); err != nil {
		return err
	}
	rows, err := db.Query(`SELECT ConnID, SnapshotID, SourceID, TargetID, Weight, ActivationFunction FROM SampledConnections ORDER BY ConnID`)
	if err != nil {
		return fmt.Errorf("storage: query SampledConnections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var connID, snapshotID, sourceID, targetID, activation int64
		var weight float64
		if err := rows.Scan(&connID, &snapshotID, &sourceID, &targetID, &weight, &activation); err != nil {
			return fmt.Errorf("storage: scan SampledConnections row: %w", err)
		}
		record := []string{
			strconv.FormatInt(connID, 10), strconv.FormatInt(snapshotID, 10),
			strconv.FormatInt(sourceID, 10), strconv.FormatInt(targetID, 10),
			strconv.FormatFloat(weight, 'f', -1, 64), strconv.FormatInt(activation, 10),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return rows.Err()
}
