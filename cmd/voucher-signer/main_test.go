package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcq-org/rewardpool/signer"
	"github.com/btcq-org/rewardpool/signer/keystore"
	"github.com/btcq-org/rewardpool/x/rewardpool/testutil"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "keys")
	cfg := map[string]any{
		"root_path":      root,
		"journal_path":   filepath.Join(dir, "journal"),
		"key_name":       "test-key",
		"address_prefix": "cosmos",
	}
	bz, err := json.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, bz, 0o600))
	return path, root
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func signArgs(cfgPath, nonce, sender string) []string {
	return []string{
		"sign", "--config", cfgPath,
		"--campaign", "spring",
		"--nonce", nonce,
		"--denom", "token",
		"--amount", "1000",
		"--sender", sender,
	}
}

func TestKeysCommands(t *testing.T) {
	cfgPath, root := writeConfig(t)

	t.Run("add creates key", func(t *testing.T) {
		out, err := run(t, "keys", "add", "--config", cfgPath)
		require.NoError(t, err)
		require.Contains(t, out, "name:           test-key")
		require.Contains(t, out, "address:        cosmos1")
	})

	t.Run("add refuses existing key", func(t *testing.T) {
		_, err := run(t, "keys", "add", "--config", cfgPath)
		require.Error(t, err)
		require.Contains(t, err.Error(), "already exists")
	})

	t.Run("show prints stored key", func(t *testing.T) {
		kstore, err := keystore.NewFileKeyStore(root)
		require.NoError(t, err)
		key, err := kstore.Get("test-key")
		require.NoError(t, err)
		priv, err := key.Secp256k1()
		require.NoError(t, err)

		out, err := run(t, "keys", "show", "--config", cfgPath)
		require.NoError(t, err)
		require.Contains(t, out, hex.EncodeToString(priv.PubKey().SerializeCompressed()))
	})

	t.Run("show unknown key", func(t *testing.T) {
		_, err := run(t, "keys", "show", "missing", "--config", cfgPath)
		require.Error(t, err)
		require.ErrorIs(t, err, keystore.ErrKeyNotFound)
	})
}

func TestSignAndVerify(t *testing.T) {
	cfgPath, root := writeConfig(t)
	_, err := run(t, "keys", "add", "--config", cfgPath)
	require.NoError(t, err)

	kstore, err := keystore.NewFileKeyStore(root)
	require.NoError(t, err)
	key, err := kstore.Get("test-key")
	require.NoError(t, err)
	priv, err := key.Secp256k1()
	require.NoError(t, err)
	pubHex := hex.EncodeToString(priv.PubKey().SerializeCompressed())

	sender := testutil.GetRandomAddress()
	out, err := run(t, signArgs(cfgPath, "n-1", sender)...)
	require.NoError(t, err)

	var v signer.Voucher
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "spring", v.CampaignID)
	require.Equal(t, "1000", v.Amount.String())
	require.Len(t, v.Signature, 64)

	t.Run("nonce cannot be signed twice", func(t *testing.T) {
		_, err := run(t, signArgs(cfgPath, "n-1", sender)...)
		require.ErrorIs(t, err, signer.ErrNonceIssued)
	})

	t.Run("claim message output", func(t *testing.T) {
		out, err := run(t, append(signArgs(cfgPath, "n-2", sender), "--claim-msg")...)
		require.NoError(t, err)
		var msg types.ExecuteMsg
		require.NoError(t, json.Unmarshal([]byte(out), &msg))
		require.NotNil(t, msg.Claim)
		require.Equal(t, "n-2", msg.Claim.Nonce)
	})

	t.Run("invalid amount", func(t *testing.T) {
		args := signArgs(cfgPath, "n-3", sender)
		args[len(args)-3] = "ten"
		_, err := run(t, args...)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid amount")
	})

	verifyArgs := func(amount string) []string {
		return []string{
			"verify",
			"--campaign", "spring",
			"--nonce", "n-1",
			"--denom", "token",
			"--amount", amount,
			"--sender", sender,
			"--pubkey", pubHex,
			"--signature", base64.StdEncoding.EncodeToString(v.Signature),
		}
	}

	t.Run("verify accepts signed voucher", func(t *testing.T) {
		out, err := run(t, verifyArgs("1000")...)
		require.NoError(t, err)
		require.Contains(t, out, "valid voucher from "+v.Signer)
	})

	t.Run("verify rejects altered amount", func(t *testing.T) {
		_, err := run(t, verifyArgs("1001")...)
		require.ErrorIs(t, err, voucher.ErrSignatureMismatch)
	})
}

func TestAddressCommand(t *testing.T) {
	key := testutil.NewVoucherKey(t, "cosmos")
	pubHex := hex.EncodeToString(key.PubKey())

	out, err := run(t, "address", pubHex, "--prefix", "cosmos")
	require.NoError(t, err)
	expected, err := voucher.PubKeyToAccount(key.PubKey(), "cosmos")
	require.NoError(t, err)
	require.Equal(t, expected, strings.TrimSpace(out))

	_, err = run(t, "address", "zz")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid pubkey hex")

	_, err = run(t, "address", "0102")
	require.Error(t, err)
}
