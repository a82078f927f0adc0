package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ault-network/ault-go/cmd/env"
	"github.com/ault-network/ault-go/cmd/query"
	"github.com/ault-network/ault-go/cmd/tx"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ault",
	Short: "Ault chain client",
	Long: `Command line client for the Ault chain.

Signs transactions with an EVM key via EIP-712 and submits them
through the chain's REST endpoint. Requires configuration through
ENV (AULT_ prefix) or an ault.yaml file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.AddCommand(
		env.New(),
		query.New(),
		tx.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
