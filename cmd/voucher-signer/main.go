// Package main provides the off-chain voucher signer for reward pool
// claims: key management, one-off signing and the HTTP signing service.
package main

import (
	"fmt"
	"os"

	"github.com/btcq-org/rewardpool/signer/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "voucher-signer",
		Short: "Issue signed claim vouchers for reward pool campaigns",
		Long: `voucher-signer holds the trusted secp256k1 key of a reward pool contract.
Vouchers it signs let a named account claim a fixed amount from a campaign
exactly once, identified by a nonce.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "path to a JSON config file")

	rootCmd.AddCommand(
		keysCmd(flags),
		signCmd(flags),
		verifyCmd(),
		addressCmd(),
		serveCmd(flags),
	)
	return rootCmd
}

func (f *rootFlags) load() (*config.Config, error) {
	return config.GetConfig(f.configFile)
}
