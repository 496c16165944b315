package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Transfer is a payout instruction settled by the bank keeper after the
// operation that produced it has succeeded.
type Transfer struct {
	ToAddress string   `json:"to_address"`
	Amount    sdk.Coin `json:"amount"`
}

// Response is the outcome of a successful operation.
type Response struct {
	Method     string          `json:"method"`
	Attributes []sdk.Attribute `json:"attributes,omitempty"`
	Transfers  []Transfer      `json:"transfers,omitempty"`
}

// NewResponse creates an empty response for method.
func NewResponse(method string) *Response {
	return &Response{Method: method}
}

// AddAttribute appends a key/value attribute and returns the response.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, sdk.NewAttribute(key, value))
	return r
}

// AddTransfer appends a bank transfer and returns the response.
func (r *Response) AddTransfer(to string, coin sdk.Coin) *Response {
	r.Transfers = append(r.Transfers, Transfer{ToAddress: to, Amount: coin})
	return r
}

// Event converts the response into an SDK event of the given type.
func (r *Response) Event(eventType string) sdk.Event {
	attrs := make([]sdk.Attribute, 0, len(r.Attributes)+1)
	attrs = append(attrs, sdk.NewAttribute(AttributeKeyMethod, r.Method))
	attrs = append(attrs, r.Attributes...)
	return sdk.NewEvent(eventType, attrs...)
}
