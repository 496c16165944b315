package main

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	"github.com/btcq-org/rewardpool/signer"
	"github.com/btcq-org/rewardpool/signer/keystore"
	"github.com/spf13/cobra"
)

func signCmd(flags *rootFlags) *cobra.Command {
	var (
		req    signer.Request
		amount string
		asMsg  bool
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a single claim voucher",
		Long: `Sign a claim voucher with the configured key. The nonce is recorded in the
journal and can never be signed again.

Use --claim-msg to print the execute message the claimant submits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			req.Amount, err = math.ParseUint(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			kstore, err := keystore.NewFileKeyStore(cfg.RootPath)
			if err != nil {
				return err
			}
			privKey, err := kstore.Get(cfg.KeyName)
			if err != nil {
				return fmt.Errorf("failed to load key %s: %w", cfg.KeyName, err)
			}
			key, err := privKey.Secp256k1()
			if err != nil {
				return err
			}
			db, err := signer.NewLevelDB(cfg.JournalPath, false)
			if err != nil {
				return err
			}
			journal := signer.NewJournal(db)
			defer journal.Close()

			s, err := signer.NewSigner(key, cfg.AddressPrefix, cfg.AccountHRP(), cfg.Denom, journal, nil)
			if err != nil {
				return err
			}
			v, err := s.Issue(req)
			if err != nil {
				return err
			}
			var out any = v
			if asMsg {
				out = v.ClaimMsg()
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&req.CampaignID, "campaign", "", "campaign id")
	cmd.Flags().StringVar(&req.Nonce, "nonce", "", "one-time voucher nonce")
	cmd.Flags().StringVar(&req.Denom, "denom", "", "denomination of the claim")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in the smallest unit")
	cmd.Flags().StringVar(&req.Sender, "sender", "", "account allowed to claim")
	cmd.Flags().BoolVar(&asMsg, "claim-msg", false, "print the claim execute message instead of the voucher")
	for _, name := range []string{"campaign", "nonce", "denom", "amount", "sender"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
