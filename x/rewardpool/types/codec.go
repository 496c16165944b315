package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// jsonValue stores collection values as their JSON encoding. Records are
// small plain structs, so the JSON form is also the canonical binary form.
type jsonValue[T any] struct {
	name string
}

// NewJSONValueCodec returns a collections value codec that persists T as JSON.
func NewJSONValueCodec[T any](name string) collcodec.ValueCodec[T] {
	return jsonValue[T]{name: name}
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return v, nil
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValue[T]) ValueType() string {
	return "json/" + c.name
}

var (
	// CampaignValue is the value codec for campaign records
	CampaignValue = NewJSONValueCodec[Campaign]("campaign")
	// ContractVersionValue is the value codec for the contract version record
	ContractVersionValue = NewJSONValueCodec[ContractVersion]("contract_version")
)
