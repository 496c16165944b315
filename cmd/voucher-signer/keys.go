package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/btcq-org/rewardpool/signer/keystore"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	"github.com/spf13/cobra"
)

func keysCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the voucher signing key",
	}
	cmd.AddCommand(keysAddCmd(flags), keysShowCmd(flags))
	return cmd
}

func keysAddCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Generate a new signing key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			name := cfg.KeyName
			if len(args) == 1 {
				name = args[0]
			}
			kstore, err := keystore.NewFileKeyStore(cfg.RootPath)
			if err != nil {
				return err
			}
			if _, err := kstore.Get(name); err == nil {
				return fmt.Errorf("key %s already exists", name)
			}
			key, err := keystore.GenerateKey()
			if err != nil {
				return err
			}
			if err := kstore.Put(name, *key); err != nil {
				return err
			}
			return printKey(cmd, name, *key, cfg.AddressPrefix)
		},
	}
}

func keysShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show the public key and signer address of a key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			name := cfg.KeyName
			if len(args) == 1 {
				name = args[0]
			}
			kstore, err := keystore.NewFileKeyStore(cfg.RootPath)
			if err != nil {
				return err
			}
			key, err := kstore.Get(name)
			if err != nil {
				return fmt.Errorf("failed to load key %s: %w", name, err)
			}
			return printKey(cmd, name, key, cfg.AddressPrefix)
		},
	}
}

func printKey(cmd *cobra.Command, name string, key keystore.PrivKey, prefix string) error {
	priv, err := key.Secp256k1()
	if err != nil {
		return err
	}
	pub := priv.PubKey().SerializeCompressed()
	addr, err := voucher.PubKeyToAccount(pub, prefix)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:           %s\n", name)
	fmt.Fprintf(out, "address:        %s\n", addr)
	fmt.Fprintf(out, "pubkey (hex):   %s\n", hex.EncodeToString(pub))
	fmt.Fprintf(out, "pubkey (base64): %s\n", base64.StdEncoding.EncodeToString(pub))
	return nil
}
