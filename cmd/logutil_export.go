package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"evosim/config"
	"evosim/storage"
)

var (
	logutilExportDbPath string
	logutilExportTable  string
	logutilExportFormat string
	logutilExportOutput string
)

// logutilExportCmd represents the logutil export command
var logutilExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta dados de uma tabela do log SQLite para um formato especificado (ex: CSV).",
	Long: `Lê um arquivo de banco de dados SQLite gerado pelo evosim e exporta
os dados da tabela especificada (GenerationSnapshots, SampledNeurons ou
SampledConnections). Atualmente, suporta exportação para CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tempAppCfg := &config.AppConfig{
			Cli: config.CLIConfig{
				Mode:          config.ModeLogUtil,
				LogUtilDbPath: logutilExportDbPath,
				LogUtilTable:  logutilExportTable,
				LogUtilFormat: logutilExportFormat,
				LogUtilOutput: logutilExportOutput,
			},
		}
		if err := tempAppCfg.Validate(); err != nil {
			return fmt.Errorf("configuração inválida para logutil export: %w", err)
		}

		fmt.Printf("  Database: %s\n", logutilExportDbPath)
		fmt.Printf("  Table: %s\n", logutilExportTable)
		fmt.Printf("  Format: %s\n", logutilExportFormat)
		if logutilExportOutput != "" {
			fmt.Printf("  Output: %s\n", logutilExportOutput)
		} else {
			fmt.Println("  Output: stdout")
		}

		err := storage.ExportLogData(
			logutilExportDbPath,
			logutilExportTable,
			logutilExportFormat,
			logutilExportOutput,
		)
		if err != nil {
			log.Printf("Erro durante a exportação do log: %v", err)
			return err
		}
		fmt.Println("Exportação do log concluída com sucesso.")
		return nil
	},
}

func init() {
	logutilCmd.AddCommand(logutilExportCmd)

	logutilExportCmd.Flags().StringVarP(&logutilExportDbPath, "dbPath", "d", "", "Caminho para o arquivo SQLite DB (obrigatório).")
	_ = logutilExportCmd.MarkFlagRequired("dbPath")

	logutilExportCmd.Flags().StringVarP(&logutilExportTable, "table", "t", "", "Tabela a ser exportada (GenerationSnapshots, SampledNeurons, SampledConnections) (obrigatório).")
	_ = logutilExportCmd.MarkFlagRequired("table")

	logutilExportCmd.Flags().StringVarP(&logutilExportFormat, "format", "f", "csv", "Formato de saída (atualmente apenas 'csv').")
	logutilExportCmd.Flags().StringVarP(&logutilExportOutput, "output", "o", "", "Arquivo de saída (stdout se não especificado).")
}
