package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"evosim/cli"
	"evosim/config"
)

var (
	runWidth        int
	runHeight       int
	runMaxCreatures int
	runMaxSteps     int
	runGenomeLength int
	runMutationRate float64
	runGenerations  int
	runTelemetryDir string
	runDbPath       string

	runCpuProfileFile string
	runMemProfileFile string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa uma simulação evolutiva completa.",
	Long: `Executa uma simulação evolutiva: inicializa uma população de criaturas
com genomas aleatórios, avança tick a tick sobre a grade, e a cada fronteira
de geração seleciona sobreviventes e gera a próxima geração por crossover e
mutação.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runCpuProfileFile != "" {
			f, err := os.Create(runCpuProfileFile)
			if err != nil {
				log.Fatal("could not create CPU profile: ", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				log.Fatal("could not start CPU profile: ", err)
			}
			defer pprof.StopCPUProfile()
			fmt.Printf("CPU profiling enabled, saving to %s\n", runCpuProfileFile)
		}

		// 1. Inicializar AppConfig com os padrões de SimParams e os valores
		// atuais das flags Cobra.
		appCfg := &config.AppConfig{
			Sim: config.DefaultSimParams(),
			Cli: config.CLIConfig{
				Mode:         config.ModeRun,
				Seed:         seed,
				Generations:  runGenerations,
				TelemetryDir: runTelemetryDir,
				DbPath:       runDbPath,
			},
		}

		// 2. Sobrescrever com o arquivo TOML, se especificado.
		if configFile != "" {
			fmt.Printf("Carregando configuração do arquivo TOML: %s\n", configFile)
			cliCfgBeforeToml := appCfg.Cli
			if _, err := toml.DecodeFile(configFile, appCfg); err != nil {
				log.Printf("Aviso: erro ao decodificar arquivo TOML %q: %v. Continuando com padrões/flags CLI.", configFile, err)
				appCfg.Cli = cliCfgBeforeToml
			}
		}

		// 3. Aplicar as flags que o usuário setou explicitamente, por cima do
		// TOML ou dos padrões.
		if cmd.Flags().Changed("seed") {
			appCfg.Cli.Seed = seed
		}
		if cmd.Flags().Changed("width") {
			appCfg.Sim.Width = runWidth
		}
		if cmd.Flags().Changed("height") {
			appCfg.Sim.Height = runHeight
		}
		if cmd.Flags().Changed("maxCreatures") {
			appCfg.Sim.MaxCreatures = runMaxCreatures
		}
		if cmd.Flags().Changed("maxSteps") {
			appCfg.Sim.MaxSteps = runMaxSteps
		}
		if cmd.Flags().Changed("genomeLength") {
			appCfg.Sim.GenomeLength = runGenomeLength
		}
		if cmd.Flags().Changed("mutationRate") {
			appCfg.Sim.MutationRate = runMutationRate
		}
		if cmd.Flags().Changed("generations") {
			appCfg.Cli.Generations = runGenerations
		}
		if cmd.Flags().Changed("telemetryDir") {
			appCfg.Cli.TelemetryDir = runTelemetryDir
		}
		if cmd.Flags().Changed("dbPath") {
			appCfg.Cli.DbPath = runDbPath
		}

		if err := appCfg.Validate(); err != nil {
			return fmt.Errorf("configuração inválida para o modo run: %w", err)
		}

		orchestrator := cli.NewOrchestrator(appCfg)
		runErr := orchestrator.Run()

		if runMemProfileFile != "" && runErr == nil {
			f, err := os.Create(runMemProfileFile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close()
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
			fmt.Printf("Memory heap profile saved to %s\n", runMemProfileFile)
		}

		if runErr != nil {
			return fmt.Errorf("erro durante a execução do modo run: %w", runErr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	defaults := config.DefaultSimParams()

	runCmd.Flags().IntVar(&runWidth, "width", defaults.Width, "Largura da grade, em células.")
	runCmd.Flags().IntVar(&runHeight, "height", defaults.Height, "Altura da grade, em células.")
	runCmd.Flags().IntVar(&runMaxCreatures, "maxCreatures", defaults.MaxCreatures, "Tamanho da população mantido a cada geração.")
	runCmd.Flags().IntVar(&runMaxSteps, "maxSteps", defaults.MaxSteps, "Ticks por geração antes da fronteira de geração.")
	runCmd.Flags().IntVar(&runGenomeLength, "genomeLength", defaults.GenomeLength, "Número de genes por genoma.")
	runCmd.Flags().Float64Var(&runMutationRate, "mutationRate", defaults.MutationRate, "Probabilidade de mutação por genoma.")
	runCmd.Flags().IntVarP(&runGenerations, "generations", "g", 50, "Número de gerações a avançar.")
	runCmd.Flags().StringVar(&runTelemetryDir, "telemetryDir", "", "Diretório para escrever CSVs de telemetria por geração (vazio desabilita).")
	runCmd.Flags().StringVar(&runDbPath, "dbPath", "", "Caminho para um banco SQLite de log de gerações (vazio desabilita).")

	runCmd.Flags().StringVar(&runCpuProfileFile, "cpuprofile", "", "Escreve perfil de CPU para este arquivo.")
	runCmd.Flags().StringVar(&runMemProfileFile, "memprofile", "", "Escreve perfil de memória para este arquivo.")
}
