package cli_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"evosim/cli"
	"evosim/config"
)

// setupTestOrchestrator builds an Orchestrator over a small, fast AppConfig
// suitable for exercising a handful of generations in a test.
func setupTestOrchestrator(t *testing.T, cliOverride func(*config.CLIConfig)) (*cli.Orchestrator, *config.AppConfig) {
	t.Helper()
	appCfg := &config.AppConfig{
		Sim: config.SimParams{
			Width: 6, Height: 6, MaxCreatures: 8, MaxSteps: 5,
			GenomeLength: 6, MutationRate: 0.01,
		},
		Cli: config.CLIConfig{
			Mode:        config.ModeRun,
			Seed:        7,
			Generations: 2,
		},
	}
	if cliOverride != nil {
		cliOverride(&appCfg.Cli)
	}
	if err := appCfg.Validate(); err != nil {
		t.Fatalf("setupTestOrchestrator: invalid AppConfig: %v", err)
	}
	return cli.NewOrchestrator(appCfg), appCfg
}

// captureStdout runs action and returns whatever it printed to os.Stdout.
func captureStdout(t *testing.T, action func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	actionErr := action()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), actionErr
}

func TestOrchestrator_Run_CompletesAndReportsEachGeneration(t *testing.T) {
	orch, appCfg := setupTestOrchestrator(t, nil)

	output, err := captureStdout(t, orch.Run)
	if err != nil {
		t.Fatalf("Run(): unexpected error %v", err)
	}

	for i := 1; i <= appCfg.Cli.Generations; i++ {
		if !bytes.Contains([]byte(output), []byte(fmt.Sprintf("generation %d:", i))) {
			t.Fatalf("Run() output: expected a report line for generation %d, got:\n%s", i, output)
		}
	}
}

func TestOrchestrator_Run_WritesTelemetryDir(t *testing.T) {
	dir := t.TempDir()
	orch, _ := setupTestOrchestrator(t, func(c *config.CLIConfig) {
		c.TelemetryDir = dir
		c.Generations = 1
	})

	if _, err := captureStdout(t, orch.Run); err != nil {
		t.Fatalf("Run(): unexpected error %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "grid-gen*.csv"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) == 0 {
		t.Error("Run(): expected at least one grid telemetry CSV to be written")
	}
}

func TestOrchestrator_Run_WritesSQLiteLog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "run.db")
	orch, _ := setupTestOrchestrator(t, func(c *config.CLIConfig) {
		c.DbPath = dbPath
		c.Generations = 1
	})

	if _, err := captureStdout(t, orch.Run); err != nil {
		t.Fatalf("Run(): unexpected error %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Run(): expected a SQLite database at %s, got %v", dbPath, err)
	}
}

func TestOrchestrator_Run_ExtinctionHaltsCleanly(t *testing.T) {
	// A single-row grid makes the upper-half survivor test unsatisfiable,
	// guaranteeing extinction at the first generation boundary.
	orch, _ := setupTestOrchestrator(t, func(c *config.CLIConfig) {
		c.Generations = 5
	})
	orch.Cfg.Sim.Height = 1

	output, err := captureStdout(t, orch.Run)
	if err != nil {
		t.Fatalf("Run(): expected a clean nil return on extinction, got %v", err)
	}
	if !bytes.Contains([]byte(output), []byte("extinct")) {
		t.Errorf("Run() output: expected an extinction message, got:\n%s", output)
	}
}
