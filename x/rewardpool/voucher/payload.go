package voucher

import (
	"crypto/sha256"
	"strings"

	"cosmossdk.io/math"
)

// SignedData is the claim authorization the trusted key signs off-chain.
// Field order is part of the wire format.
type SignedData struct {
	CampaignID string    `json:"campaign_id"`
	Nonce      string    `json:"nonce"`
	Denom      string    `json:"denom"`
	Amount     math.Uint `json:"amount"`
	Sender     string    `json:"sender"`
}

// CanonicalJSON renders d as compact JSON in declaration order, with the
// amount as a decimal string. Strings are escaped the way the reference
// signer escapes them: only quote, backslash and control characters.
func (d SignedData) CanonicalJSON() string {
	amount := "0"
	if !d.Amount.IsNil() {
		amount = d.Amount.String()
	}
	var b strings.Builder
	b.WriteString(`{"campaign_id":`)
	writeString(&b, d.CampaignID)
	b.WriteString(`,"nonce":`)
	writeString(&b, d.Nonce)
	b.WriteString(`,"denom":`)
	writeString(&b, d.Denom)
	b.WriteString(`,"amount":`)
	writeString(&b, amount)
	b.WriteString(`,"sender":`)
	writeString(&b, d.Sender)
	b.WriteByte('}')
	return b.String()
}

const hexDigits = "0123456789abcdef"

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

// SignDoc wraps data in the zero-fee amino "sign arbitrary data" document
// signed by wallets. data is embedded verbatim.
func SignDoc(signer, data string) string {
	return `{"account_number":"0","chain_id":"","fee":{"amount":[],"gas":"0"},"memo":"",` +
		`"msgs":[{"type":"sign/MsgSignData","value":{"data":"` + data + `","signer":"` + signer + `"}}],` +
		`"sequence":"0"}`
}

// Digest is SHA-256 over the sign doc.
func Digest(signDoc string) []byte {
	sum := sha256.Sum256([]byte(signDoc))
	return sum[:]
}
