package cmd

import "testing"

func TestRootCmd_HasRunAndLogutilSubcommands(t *testing.T) {
	if rootCmd.Name() != "evosim" {
		t.Errorf("rootCmd.Name(): expected %q, got %q", "evosim", rootCmd.Name())
	}

	var sawRun, sawLogutil bool
	for _, c := range rootCmd.Commands() {
		switch c.Name() {
		case "run":
			sawRun = true
		case "logutil":
			sawLogutil = true
		}
	}
	if !sawRun {
		t.Error("rootCmd: expected a \"run\" subcommand")
	}
	if !sawLogutil {
		t.Error("rootCmd: expected a \"logutil\" subcommand")
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	if f := rootCmd.PersistentFlags().Lookup("configFile"); f == nil {
		t.Error("rootCmd: expected a persistent --configFile flag")
	}
	if f := rootCmd.PersistentFlags().Lookup("seed"); f == nil {
		t.Error("rootCmd: expected a persistent --seed flag")
	}
}

func TestLogutilCmd_HasExportSubcommand(t *testing.T) {
	var sawExport bool
	for _, c := range logutilCmd.Commands() {
		if c.Name() == "export" {
			sawExport = true
		}
	}
	if !sawExport {
		t.Error("logutilCmd: expected an \"export\" subcommand")
	}
}
