package signer

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"cosmossdk.io/math"
	"github.com/btcq-org/rewardpool/signer/metrics"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	"cosmossdk.io/core/address"
	"github.com/btcsuite/btcd/btcec/v2"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrInvalidRequest is returned for voucher requests the signer refuses.
var ErrInvalidRequest = errors.New("signer: invalid voucher request")

// Request asks for a voucher letting Sender claim Amount of Denom from
// CampaignID once, under Nonce.
type Request struct {
	CampaignID string    `json:"campaign_id"`
	Nonce      string    `json:"nonce"`
	Denom      string    `json:"denom"`
	Amount     math.Uint `json:"amount"`
	Sender     string    `json:"sender"`
}

func (r Request) signedData() voucher.SignedData {
	return voucher.SignedData{
		CampaignID: r.CampaignID,
		Nonce:      r.Nonce,
		Denom:      r.Denom,
		Amount:     r.Amount,
		Sender:     r.Sender,
	}
}

// Voucher is a signed Request.
type Voucher struct {
	Request
	Signer    string `json:"signer"`
	Signature []byte `json:"signature"`
}

// ClaimMsg returns the execute message redeeming v.
func (v Voucher) ClaimMsg() types.ExecuteMsg {
	return types.ExecuteMsg{
		Claim: &types.MsgClaim{
			CampaignID: v.CampaignID,
			Amount:     v.Amount,
			Denom:      v.Denom,
			Nonce:      v.Nonce,
			Signature:  v.Signature,
		},
	}
}

// Signer issues vouchers with the trusted key.
type Signer struct {
	mu      sync.Mutex
	key     *btcec.PrivateKey
	auth    *voucher.Authorizer
	journal  *Journal
	accounts address.Codec
	denom    string
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewSigner creates a signer whose address uses hrp. Claimant addresses
// must use accountHRP, the chain's account prefix; an empty accountHRP
// means hrp. A non-empty denom restricts vouchers to that denomination.
func NewSigner(key *btcec.PrivateKey, hrp, accountHRP, denom string, journal *Journal, m *metrics.Metrics) (*Signer, error) {
	if key == nil {
		return nil, fmt.Errorf("signer: private key is required")
	}
	if journal == nil {
		return nil, fmt.Errorf("signer: journal is required")
	}
	auth, err := voucher.NewAuthorizer(key.PubKey().SerializeCompressed(), hrp, nil)
	if err != nil {
		return nil, fmt.Errorf("signer: failed to derive signer address: %w", err)
	}
	if accountHRP == "" {
		accountHRP = hrp
	}
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &Signer{
		key:      key,
		auth:     auth,
		journal:  journal,
		accounts: addresscodec.NewBech32Codec(accountHRP),
		denom:    denom,
		metrics:  m,
		logger:   log.With().Str("module", "voucher_signer").Logger(),
	}, nil
}

// PubKey returns the compressed public key to instantiate the contract with.
func (s *Signer) PubKey() []byte {
	return s.key.PubKey().SerializeCompressed()
}

// Address returns the bech32 signer address embedded in sign docs.
func (s *Signer) Address() string {
	return s.auth.Signer()
}

// canonicalSender decodes and re-encodes sender with the account codec, the
// same round trip the chain applies before it rebuilds the signed payload.
func (s *Signer) canonicalSender(sender string) (string, error) {
	bz, err := s.accounts.StringToBytes(sender)
	if err != nil {
		return "", err
	}
	return s.accounts.BytesToString(bz)
}

// validate checks req and returns it with the sender in canonical form.
func (s *Signer) validate(req Request) (Request, error) {
	msg := types.MsgClaim{
		Sender:     req.Sender,
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Denom:      req.Denom,
		Nonce:      req.Nonce,
	}
	if err := msg.ValidateBasic(); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	sender, err := s.canonicalSender(req.Sender)
	if err != nil {
		return req, fmt.Errorf("%w: sender %q: %v", ErrInvalidRequest, req.Sender, err)
	}
	if s.denom != "" && req.Denom != s.denom {
		return req, fmt.Errorf("%w: denom must be %s, got %s", ErrInvalidRequest, s.denom, req.Denom)
	}
	req.Sender = sender
	return req, nil
}

// Issue signs req. Each nonce is signed at most once. The returned voucher
// carries the sender in the canonical form that was signed.
func (s *Signer) Issue(req Request) (*Voucher, error) {
	req, err := s.validate(req)
	if err != nil {
		s.metrics.IncrCounter(metrics.MetricNameRejectedVouchers)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issued, err := s.journal.Has(req.Nonce)
	if err != nil {
		return nil, fmt.Errorf("signer: failed to read journal: %w", err)
	}
	if issued {
		s.metrics.IncrCounter(metrics.MetricNameReplayedNonces)
		return nil, fmt.Errorf("%w: %s", ErrNonceIssued, req.Nonce)
	}

	sig, err := voucher.Sign(s.key, s.auth.Digest(req.signedData()))
	if err != nil {
		return nil, fmt.Errorf("signer: failed to sign voucher: %w", err)
	}
	v := &Voucher{Request: req, Signer: s.Address(), Signature: sig}
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if err := s.journal.Record(req.Nonce, payload); err != nil {
		return nil, err
	}

	s.metrics.IncrCounter(metrics.MetricNameIssuedVouchers)
	s.logger.Info().
		Str("campaign_id", req.CampaignID).
		Str("nonce", req.Nonce).
		Str("sender", req.Sender).
		Str("amount", req.Amount.String()).
		Msg("issued voucher")
	return v, nil
}

// Verify checks that v carries a valid signature from this signer.
func (s *Signer) Verify(v Voucher) error {
	return s.auth.Verify(v.signedData(), v.Signature)
}
