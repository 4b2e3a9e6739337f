package cmd

import (
	"github.com/spf13/cobra"
)

// logutilCmd represents the base logutil command
var logutilCmd = &cobra.Command{
	Use:   "logutil",
	Short: "Utilitários para interagir com logs SQLite gerados pelo evosim.",
	Long: `O comando logutil fornece subcomandos para processar e exportar dados
dos arquivos de log SQLite criados durante as simulações do evosim.`,
}

func init() {
	rootCmd.AddCommand(logutilCmd)
}
