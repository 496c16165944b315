package voucher

import (
	"errors"
	"fmt"
)

// ErrSignatureMismatch is returned when a well-formed signature was not
// produced by the trusted key for the given payload.
var ErrSignatureMismatch = errors.New("voucher: signature does not match")

// Authorizer checks that SignedData was signed by the trusted key.
type Authorizer struct {
	pubKey   []byte
	signer   string
	verifier Verifier
}

// NewAuthorizer derives the signer address for pubKey under hrp. A nil
// verifier selects Secp256k1Verifier.
func NewAuthorizer(pubKey []byte, hrp string, verifier Verifier) (*Authorizer, error) {
	signer, err := PubKeyToAccount(pubKey, hrp)
	if err != nil {
		return nil, err
	}
	if verifier == nil {
		verifier = Secp256k1Verifier{}
	}
	return &Authorizer{pubKey: pubKey, signer: signer, verifier: verifier}, nil
}

// Signer returns the bech32 address embedded in every sign doc.
func (a *Authorizer) Signer() string {
	return a.signer
}

// Digest returns the hash the trusted key signs for data.
func (a *Authorizer) Digest(data SignedData) []byte {
	return Digest(SignDoc(a.signer, data.CanonicalJSON()))
}

// Verify returns nil when signature authorizes data.
func (a *Authorizer) Verify(data SignedData, signature []byte) error {
	ok, err := a.verifier.VerifySecp256k1(a.Digest(data), signature, a.pubKey)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: signer %s", ErrSignatureMismatch, a.signer)
	}
	return nil
}
