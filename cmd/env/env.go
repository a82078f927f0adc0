package env

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ault-network/ault-go/internal/cli"
)

// New returns the env subcommand, printing the effective configuration
// with secrets redacted.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			environment, err := cli.Setup()
			if err != nil {
				return err
			}
			pretty, err := json.MarshalIndent(environment.Config.Redacted(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(pretty))
			return nil
		},
	}
}
