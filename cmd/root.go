package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Flags globais/persistentes, compartilhadas por todos os subcomandos.
	configFile string
	seed       int64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "evosim",
	Short: "evosim: simulador de criaturas evolutivas em uma grade 2D",
	Long: `evosim é uma aplicação de linha de comando escrita em Go que evolui
populações de criaturas controladas por redes neurais codificadas em genoma,
selecionadas e reproduzidas geração após geração numa grade 2D.
Para mais detalhes sobre um comando específico, use: evosim [comando] --help`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "Caminho para o arquivo de configuração TOML.")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Semente para o gerador de números aleatórios (0 usa a semente fixa 1).")
}
