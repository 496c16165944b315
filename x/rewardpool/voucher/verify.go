package voucher

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

const (
	DigestLength    = 32
	SignatureLength = 64
)

var (
	ErrMalformedDigest    = errors.New("voucher: digest must be 32 bytes")
	ErrMalformedSignature = errors.New("voucher: malformed signature")
	ErrMalformedPubKey    = errors.New("voucher: malformed public key")
)

// Verifier checks a secp256k1 ECDSA signature over a prehashed message.
// Malformed inputs return an error; a well-formed signature that does not
// match returns false.
type Verifier interface {
	VerifySecp256k1(digest, signature, pubKey []byte) (bool, error)
}

// Secp256k1Verifier verifies 64-byte compact (r || s) signatures against a
// SEC1 encoded key. High-S signatures are normalised before verification.
type Secp256k1Verifier struct{}

var _ Verifier = Secp256k1Verifier{}

func (Secp256k1Verifier) VerifySecp256k1(digest, signature, pubKey []byte) (bool, error) {
	if len(digest) != DigestLength {
		return false, ErrMalformedDigest
	}
	sig, err := ParseCompactSignature(signature)
	if err != nil {
		return false, err
	}
	key, err := ParsePubKey(pubKey)
	if err != nil {
		return false, err
	}
	return sig.Verify(digest, key), nil
}

// ParsePubKey parses a compressed or uncompressed secp256k1 public key.
func ParsePubKey(pubKey []byte) (*btcec.PublicKey, error) {
	key, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPubKey, err)
	}
	return key, nil
}

// ParseCompactSignature parses r || s, rejecting zero or out-of-range scalars.
func ParseCompactSignature(signature []byte) (*ecdsa.Signature, error) {
	if len(signature) != SignatureLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, SignatureLength, len(signature))
	}
	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(signature[:32]); overflow || r.IsZero() {
		return nil, fmt.Errorf("%w: r out of range", ErrMalformedSignature)
	}
	if overflow := s.SetByteSlice(signature[32:]); overflow || s.IsZero() {
		return nil, fmt.Errorf("%w: s out of range", ErrMalformedSignature)
	}
	if s.IsOverHalfOrder() {
		s.Negate()
	}
	return ecdsa.NewSignature(&r, &s), nil
}

// Sign produces the 64-byte compact signature of digest. The result is
// deterministic (RFC6979) and low-S.
func Sign(key *btcec.PrivateKey, digest []byte) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, ErrMalformedDigest
	}
	compact := ecdsa.SignCompact(key, digest, true)
	// drop the leading recovery byte
	return compact[1:], nil
}
