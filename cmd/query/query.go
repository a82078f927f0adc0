package query

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ault-network/ault-go/address"
	"github.com/ault-network/ault-go/client/query"
	"github.com/ault-network/ault-go/internal/cli"
)

// New returns the query subcommand tree.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read chain state",
	}
	cmd.AddCommand(
		newLicense(),
		newAccount(),
	)
	return cmd
}

func newLicense() *cobra.Command {
	return &cobra.Command{
		Use:   "license <id>",
		Short: "Show a license by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			environment, err := cli.Setup()
			if err != nil {
				return err
			}
			license, err := query.NewLicenseQuerier(environment.Client).License(c.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(license)
		},
	}
}

func newAccount() *cobra.Command {
	return &cobra.Command{
		Use:   "account <address>",
		Short: "Show account number, sequence and public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			environment, err := cli.Setup()
			if err != nil {
				return err
			}
			addr := args[0]
			if address.IsHex(addr) {
				converted, err := address.ToBech32(addr, environment.Network.Bech32Prefix)
				if err != nil {
					return err
				}
				addr = converted
			}
			account, err := environment.Client.Account(c.Context(), addr)
			if err != nil {
				return err
			}
			return printJSON(account)
		},
	}
}

func printJSON(v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}
