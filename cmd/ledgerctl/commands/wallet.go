package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/forgo/learnledger/api/internal/model"
)

func printWallet(w io.Writer, conn model.WalletConnection) {
	if !conn.Connected {
		fmt.Fprintln(w, "Wallet not connected")
		return
	}
	fmt.Fprintf(w, "Wallet %s (%s)\n", conn.ShortAddress, conn.Address)
}

func walletCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the wallet connection",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "connect",
			Short: "Connect the server's wallet provider",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				conn, err := opts.client().ConnectWallet(cmd.Context())
				if err != nil {
					return err
				}
				return opts.render(cmd.OutOrStdout(), conn, func(w io.Writer) { printWallet(w, conn) })
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the connected wallet",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				conn, err := opts.client().Wallet(cmd.Context())
				if err != nil {
					return err
				}
				return opts.render(cmd.OutOrStdout(), conn, func(w io.Writer) { printWallet(w, conn) })
			},
		},
		&cobra.Command{
			Use:   "disconnect",
			Short: "Forget the connected wallet",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := opts.client().DisconnectWallet(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Wallet disconnected")
				return nil
			},
		},
	)
	return cmd
}
