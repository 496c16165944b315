package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	"github.com/btcq-org/rewardpool/constants"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	var (
		data      voucher.SignedData
		amount    string
		pubKeyHex string
		sigB64    string
		prefix    string
		showDoc   bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a claim voucher against a trusted public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			data.Amount, err = math.ParseUint(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			pubKey, err := hex.DecodeString(pubKeyHex)
			if err != nil {
				return fmt.Errorf("invalid pubkey hex: %w", err)
			}
			sig, err := base64.StdEncoding.DecodeString(sigB64)
			if err != nil {
				return fmt.Errorf("invalid signature base64: %w", err)
			}
			auth, err := voucher.NewAuthorizer(pubKey, prefix, nil)
			if err != nil {
				return err
			}
			if showDoc {
				fmt.Fprintln(cmd.OutOrStdout(), voucher.SignDoc(auth.Signer(), data.CanonicalJSON()))
			}
			if err := auth.Verify(data, sig); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid voucher from %s\n", auth.Signer())
			return nil
		},
	}
	cmd.Flags().StringVar(&data.CampaignID, "campaign", "", "campaign id")
	cmd.Flags().StringVar(&data.Nonce, "nonce", "", "voucher nonce")
	cmd.Flags().StringVar(&data.Denom, "denom", "", "denomination of the claim")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in the smallest unit")
	cmd.Flags().StringVar(&data.Sender, "sender", "", "claiming account")
	cmd.Flags().StringVar(&pubKeyHex, "pubkey", "", "trusted public key, hex")
	cmd.Flags().StringVar(&sigB64, "signature", "", "64-byte signature, base64")
	cmd.Flags().StringVar(&prefix, "prefix", constants.DefaultAddressPrefix, "bech32 prefix of the signer address")
	cmd.Flags().BoolVar(&showDoc, "show-doc", false, "print the signed document")
	for _, name := range []string{"campaign", "nonce", "denom", "amount", "sender", "pubkey", "signature"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func addressCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "address [pubkey-hex]",
		Short: "Derive the signer address of a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubKey, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid pubkey hex: %w", err)
			}
			if _, err := voucher.ParsePubKey(pubKey); err != nil {
				return err
			}
			addr, err := voucher.PubKeyToAccount(pubKey, prefix)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", constants.DefaultAddressPrefix, "bech32 prefix")
	return cmd
}
