package signer

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/btcq-org/rewardpool/constants"
	"github.com/btcq-org/rewardpool/signer/metrics"
	rptestutil "github.com/btcq-org/rewardpool/x/rewardpool/testutil"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, denom string) (*Signer, *metrics.Metrics) {
	t.Helper()
	db, err := NewLevelDB("", false)
	require.NoError(t, err)
	journal := NewJournal(db)
	t.Cleanup(func() { _ = journal.Close() })
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	m := metrics.NewMetrics()
	s, err := NewSigner(key, constants.DefaultAddressPrefix, "", denom, journal, m)
	require.NoError(t, err)
	return s, m
}

func counter(t *testing.T, m *metrics.Metrics, name metrics.MetricName) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() == metrics.NamespaceSigner+"_"+metrics.SubsystemIssuer+"_"+name.String() {
			return fam.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestIssue(t *testing.T) {
	s, m := newTestSigner(t, "token")
	alice := rptestutil.GetRandomAddress()
	req := Request{CampaignID: "c1", Nonce: "n1", Denom: "token", Amount: math.NewUint(100), Sender: alice}

	v, err := s.Issue(req)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), v.Signer)
	require.Len(t, v.Signature, voucher.SignatureLength)
	require.NoError(t, s.Verify(*v))

	// the on-chain authorizer accepts it
	auth, err := voucher.NewAuthorizer(s.PubKey(), constants.DefaultAddressPrefix, nil)
	require.NoError(t, err)
	data := voucher.SignedData{CampaignID: "c1", Nonce: "n1", Denom: "token", Amount: math.NewUint(100), Sender: alice}
	require.NoError(t, auth.Verify(data, v.Signature))

	// and so does an independent secp256k1 implementation
	assert.True(t, ethcrypto.VerifySignature(s.PubKey(), auth.Digest(data), v.Signature))

	claim := v.ClaimMsg()
	require.NotNil(t, claim.Claim)
	assert.Equal(t, v.Signature, claim.Claim.Signature)

	_, err = s.Issue(Request{CampaignID: "c2", Nonce: "n1", Denom: "token", Amount: math.NewUint(1), Sender: alice})
	require.ErrorIs(t, err, ErrNonceIssued)

	assert.Equal(t, float64(1), counter(t, m, metrics.MetricNameIssuedVouchers))
	assert.Equal(t, float64(1), counter(t, m, metrics.MetricNameReplayedNonces))

	n, err := s.journal.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestIssueRejectsInvalidRequests(t *testing.T) {
	s, m := newTestSigner(t, "token")
	alice := rptestutil.GetRandomAddress()
	valid := Request{CampaignID: "c1", Nonce: "n1", Denom: "token", Amount: math.NewUint(100), Sender: alice}

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"empty campaign", func(r *Request) { r.CampaignID = "" }},
		{"empty nonce", func(r *Request) { r.Nonce = "" }},
		{"zero amount", func(r *Request) { r.Amount = math.ZeroUint() }},
		{"missing amount", func(r *Request) { r.Amount = math.Uint{} }},
		{"bad sender", func(r *Request) { r.Sender = "alice" }},
		{"foreign prefix", func(r *Request) { r.Sender = withPrefix(t, "osmo", alice) }},
		{"mixed case sender", func(r *Request) { r.Sender = "C" + alice[1:] }},
		{"foreign denom", func(r *Request) { r.Denom = "uatom" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			_, err := s.Issue(req)
			require.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
	assert.Equal(t, float64(len(tests)), counter(t, m, metrics.MetricNameRejectedVouchers))

	used, err := s.journal.Has("n1")
	require.NoError(t, err)
	assert.False(t, used)
}

func withPrefix(t *testing.T, hrp, addr string) string {
	t.Helper()
	_, bz, err := bech32.DecodeAndConvert(addr)
	require.NoError(t, err)
	out, err := bech32.ConvertAndEncode(hrp, bz)
	require.NoError(t, err)
	return out
}

func TestIssueCanonicalizesSender(t *testing.T) {
	s, _ := newTestSigner(t, "token")
	alice := rptestutil.GetRandomAddress()

	v, err := s.Issue(Request{CampaignID: "c1", Nonce: "n1", Denom: "token", Amount: math.NewUint(100), Sender: strings.ToUpper(alice)})
	require.NoError(t, err)
	assert.Equal(t, alice, v.Sender)

	// the chain rebuilds the payload with the lower-case sender
	auth, err := voucher.NewAuthorizer(s.PubKey(), constants.DefaultAddressPrefix, nil)
	require.NoError(t, err)
	data := voucher.SignedData{CampaignID: "c1", Nonce: "n1", Denom: "token", Amount: math.NewUint(100), Sender: alice}
	require.NoError(t, auth.Verify(data, v.Signature))
}

func TestIssueAccountPrefix(t *testing.T) {
	db, err := NewLevelDB("", false)
	require.NoError(t, err)
	journal := NewJournal(db)
	t.Cleanup(func() { _ = journal.Close() })
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	s, err := NewSigner(key, constants.DefaultAddressPrefix, "osmo", "", journal, nil)
	require.NoError(t, err)

	alice := rptestutil.GetRandomAddress()
	_, err = s.Issue(Request{CampaignID: "c1", Nonce: "n1", Denom: "token", Amount: math.NewUint(1), Sender: alice})
	require.ErrorIs(t, err, ErrInvalidRequest)

	osmoAlice := withPrefix(t, "osmo", alice)
	v, err := s.Issue(Request{CampaignID: "c1", Nonce: "n1", Denom: "token", Amount: math.NewUint(1), Sender: osmoAlice})
	require.NoError(t, err)
	assert.Equal(t, osmoAlice, v.Sender)
	assert.True(t, strings.HasPrefix(v.Signer, constants.DefaultAddressPrefix+"1"))
}

func TestJournal(t *testing.T) {
	db, err := NewLevelDB("", false)
	require.NoError(t, err)
	j := NewJournal(db)
	defer j.Close()

	require.NoError(t, j.Record("a", []byte("one")))
	require.ErrorIs(t, j.Record("a", []byte("two")), ErrNonceIssued)
	got, err := j.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)

	has, err := j.Has("b")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestJournalPersists(t *testing.T) {
	path := t.TempDir()
	db, err := NewLevelDB(path, false)
	require.NoError(t, err)
	require.NoError(t, NewJournal(db).Record("n1", []byte("{}")))
	require.NoError(t, db.Close())

	db, err = NewLevelDB(path, true)
	require.NoError(t, err)
	j := NewJournal(db)
	defer j.Close()
	has, err := j.Has("n1")
	require.NoError(t, err)
	assert.True(t, has)
}
