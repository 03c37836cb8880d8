// Package cmd implements the CLI commands for the cade-meu-filme server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cade-meu-filme",
	Short: "Find which streaming services carry a movie or series",
	Long: "An API server that searches movies and TV series by title and reports\n" +
		"which streaming services carry them, per country.",
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path (default: environment variables only)")

	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
