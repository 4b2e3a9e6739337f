package cmd

import (
	"fmt"
	"testing"

	"evosim/config"
)

func TestRunCmd_FlagDefaultsMatchDefaultSimParams(t *testing.T) {
	defaults := config.DefaultSimParams()

	tests := []struct {
		flag string
		want string
	}{
		{"width", fmt.Sprint(defaults.Width)},
		{"height", fmt.Sprint(defaults.Height)},
		{"maxCreatures", fmt.Sprint(defaults.MaxCreatures)},
		{"maxSteps", fmt.Sprint(defaults.MaxSteps)},
		{"genomeLength", fmt.Sprint(defaults.GenomeLength)},
		{"mutationRate", fmt.Sprint(defaults.MutationRate)},
	}
	for _, tt := range tests {
		f := runCmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("runCmd: expected a %q flag", tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("runCmd --%s default: expected %q, got %q", tt.flag, tt.want, f.DefValue)
		}
	}
}

func TestRunCmd_HasTelemetryAndProfilingFlags(t *testing.T) {
	for _, flag := range []string{"generations", "telemetryDir", "dbPath", "cpuprofile", "memprofile"} {
		if runCmd.Flags().Lookup(flag) == nil {
			t.Errorf("runCmd: expected a %q flag", flag)
		}
	}
}

func TestRunCmd_RegisteredUnderRoot(t *testing.T) {
	if runCmd.Parent() != rootCmd {
		t.Error("runCmd: expected to be registered as a child of rootCmd")
	}
}
