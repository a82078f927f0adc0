package tx

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ault-network/ault-go/address"
	"github.com/ault-network/ault-go/client"
	"github.com/ault-network/ault-go/internal/cli"
	"github.com/ault-network/ault-go/msgs"
)

// New returns the tx subcommand tree.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Sign and broadcast transactions",
	}
	cmd.AddCommand(
		newMintLicense(),
		newDelegate(),
		newPlaceOrder(),
	)
	return cmd
}

func newMintLicense() *cobra.Command {
	var recipient, memo string
	cmd := &cobra.Command{
		Use:   "mint-license <license-id>",
		Short: "Mint a license",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			licenseID, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("invalid license id %q", args[0])
			}
			return run(c, memo, func(creator string, _ *cli.Env) msgs.Message {
				to := recipient
				if to == "" {
					to = creator
				}
				return msgs.NewMsgMintLicense(creator, licenseID, to)
			})
		},
	}
	cmd.Flags().StringVar(&recipient, "recipient", "", "recipient address (defaults to the signer)")
	cmd.Flags().StringVar(&memo, "memo", "", "transaction memo")
	return cmd
}

func newDelegate() *cobra.Command {
	var memo string
	cmd := &cobra.Command{
		Use:   "delegate <validator> <amount>",
		Short: "Delegate stake to a validator",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, memo, func(creator string, environment *cli.Env) msgs.Message {
				return msgs.NewMsgDelegate(creator, args[0], environment.Network.Denom, args[1])
			})
		},
	}
	cmd.Flags().StringVar(&memo, "memo", "", "transaction memo")
	return cmd
}

func newPlaceOrder() *cobra.Command {
	var (
		marketID uint64
		side     string
		lifespan uint64
		memo     string
	)
	cmd := &cobra.Command{
		Use:   "place-order <price> <quantity>",
		Short: "Place a limit order",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			orderSide := msgs.OrderSideBuy
			if side == "sell" {
				orderSide = msgs.OrderSideSell
			}
			orderID := uuid.New()
			lifespanNanos := new(big.Int).Mul(
				new(big.Int).SetUint64(lifespan),
				big.NewInt(1_000_000_000),
			)
			return run(c, memo, func(creator string, _ *cli.Env) msgs.Message {
				return msgs.NewMsgPlaceLimitOrder(
					creator, marketID, orderID[:], args[0], args[1], orderSide, lifespanNanos)
			})
		},
	}
	cmd.Flags().Uint64Var(&marketID, "market", 1, "market id")
	cmd.Flags().StringVar(&side, "side", "buy", "order side: buy or sell")
	cmd.Flags().Uint64Var(&lifespan, "lifespan", 3600, "order lifespan in seconds")
	cmd.Flags().StringVar(&memo, "memo", "", "transaction memo")
	return cmd
}

// run resolves the signer, builds one message addressed from its
// bech32 address and broadcasts it.
func run(c *cobra.Command, memo string, build func(creator string, environment *cli.Env) msgs.Message) error {
	environment, err := cli.Setup()
	if err != nil {
		return err
	}

	localSigner, err := environment.Signer()
	if err != nil {
		return err
	}
	creator, err := address.ToBech32(localSigner.Address(), environment.Network.Bech32Prefix)
	if err != nil {
		return err
	}

	result, err := environment.Client.SignAndBroadcast(
		c.Context(), localSigner, []msgs.Message{build(creator, environment)}, client.WithMemo(memo))
	if err != nil {
		return err
	}

	fmt.Printf("txhash: %s\ncode:   %d\n", result.TxHash, result.Code)
	if result.Code != 0 {
		fmt.Printf("rejected by chain: %s\n", result.RawLog)
	}
	return nil
}
