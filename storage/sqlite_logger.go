package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"evosim/brain"
	"evosim/neuron"
)

// SQLiteLogger persists one row per generation boundary to a SQLite
// database, plus an optional snapshot of one sampled survivor's brain.
type SQLiteLogger struct {
	db    *sql.DB
	RunID string
}

// NewSQLiteLogger removes any existing database at dataSourceName, opens a
// fresh one, and creates its schema. Each logger stamps a fresh RunID
// (google/uuid) on every GenerationSnapshots row it writes; since the file
// is replaced on open, a database file holds the rows of one logger only.
func NewSQLiteLogger(dataSourceName string) (*SQLiteLogger, error) {
	if err := os.Remove(dataSourceName); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("storage: remove existing db %s: %w", dataSourceName, err)
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dataSourceName, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", dataSourceName, err)
	}

	l := &SQLiteLogger{db: db, RunID: uuid.NewString()}
	if err := l.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *SQLiteLogger) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS GenerationSnapshots (
			SnapshotID INTEGER PRIMARY KEY AUTOINCREMENT,
			RunID TEXT NOT NULL,
			Generation INTEGER NOT NULL,
			SurvivorCount INTEGER NOT NULL,
			MeanEnergy REAL NOT NULL,
			MeanAge REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS SampledNeurons (
			StateID INTEGER PRIMARY KEY AUTOINCREMENT,
			SnapshotID INTEGER NOT NULL,
			NeuronIndex INTEGER NOT NULL,
			Type TEXT NOT NULL,
			NeuronID INTEGER NOT NULL,
			Label TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS SampledConnections (
			ConnID INTEGER PRIMARY KEY AUTOINCREMENT,
			SnapshotID INTEGER NOT NULL,
			SourceID INTEGER NOT NULL,
			TargetID INTEGER NOT NULL,
			Weight REAL NOT NULL,
			ActivationFunction INTEGER NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := l.db.Exec(s); err != nil {
			return fmt.Errorf("storage: create table: %w", err)
		}
	}
	return nil
}

// LogGeneration records one GenerationSnapshots row, and, if sample is
// non-nil, that survivor's full neuron/connection list as
// SampledNeurons/SampledConnections rows tied to the same snapshot, all in
// one transaction.
func (l *SQLiteLogger) LogGeneration(generation uint64, survivors int, meanEnergy, meanAge float64, sample *brain.Brain) error {
	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO GenerationSnapshots (RunID, Generation, SurvivorCount, MeanEnergy, MeanAge) VALUES (?, ?, ?, ?, ?)`,
		l.RunID, generation, survivors, meanEnergy, meanAge,
	)
	if err != nil {
		return fmt.Errorf("storage: insert snapshot: %w", err)
	}
	snapshotID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("storage: read snapshot id: %w", err)
	}

	if sample != nil {
		neuronStmt, err := tx.Prepare(`INSERT INTO SampledNeurons (SnapshotID, NeuronIndex, Type, NeuronID, Label) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("storage: prepare neuron insert: %w", err)
		}
		defer neuronStmt.Close()

		for i, n := range sample.Neurons {
			if _, err := neuronStmt.Exec(snapshotID, i, n.Role.String(), int(n.ID), neuron.Label(n.ID)); err != nil {
				return fmt.Errorf("storage: insert sampled neuron: %w", err)
			}
		}

		connStmt, err := tx.Prepare(`INSERT INTO SampledConnections (SnapshotID, SourceID, TargetID, Weight, ActivationFunction) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("storage: prepare connection insert: %w", err)
		}
		defer connStmt.Close()

		for _, n := range sample.Neurons {
			for _, c := range n.Out {
				if _, err := connStmt.Exec(snapshotID, int(n.ID), int(c.Dest), c.Weight, int(c.Activation)); err != nil {
					return fmt.Errorf("storage: insert sampled connection: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit tx: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (l *SQLiteLogger) Close() error {
	return l.db.Close()
}

// DBForTest exposes the underlying *sql.DB so tests can inspect rows
// LogGeneration wrote.
func (l *SQLiteLogger) DBForTest() *sql.DB {
	return l.db
}
