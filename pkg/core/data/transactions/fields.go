// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
	"github.com/pkg/errors"
)

// wire field names
const (
	fieldType                = "type"
	fieldVersion             = "version"
	fieldTransactionHash     = "transaction_hash"
	fieldSenderAddress       = "sender_address"
	fieldContractAddress     = "contract_address"
	fieldEntryPointSelector  = "entry_point_selector"
	fieldCalldata            = "calldata"
	fieldMaxFee              = "max_fee"
	fieldSignature           = "signature"
	fieldNonce               = "nonce"
	fieldClassHash           = "class_hash"
	fieldCompiledClassHash   = "compiled_class_hash"
	fieldConstructorCalldata = "constructor_calldata"
	fieldContractAddressSalt = "contract_address_salt"
)

var jsonNull = []byte("null")

// fields is a transaction payload split into its top level members. Members
// the codec does not know about are kept but never read.
type fields map[string]json.RawMessage

func parseFields(data []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(ErrMalformedPayload, err.Error())
	}

	// a literal null unmarshals into a nil map without error
	if f == nil {
		return nil, ErrMalformedPayload
	}

	return f, nil
}

func (f fields) raw(name string) (json.RawMessage, bool) {
	raw, ok := f[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, false
	}
	return raw, true
}

// text reads a required string member.
func (f fields) text(name string) (string, error) {
	raw, ok := f.raw(name)
	if !ok {
		return "", &MissingFieldError{Field: name}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &MalformedScalarError{Field: name, Value: string(raw)}
	}

	return s, nil
}

// scalar reads a required felt member.
func (f fields) scalar(name string) (felt.Felt, error) {
	s, err := f.text(name)
	if err != nil {
		return felt.Zero, err
	}

	v, err := felt.FromHex(s)
	if err != nil {
		return felt.Zero, &MalformedScalarError{Field: name, Value: s}
	}

	return v, nil
}

// optionalScalar reads a felt member that may be absent.
func (f fields) optionalScalar(name string) (*felt.Felt, error) {
	if _, ok := f.raw(name); !ok {
		return nil, nil
	}

	v, err := f.scalar(name)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// scalars reads a required array of felts, preserving order.
func (f fields) scalars(name string) ([]felt.Felt, error) {
	raw, ok := f.raw(name)
	if !ok {
		return nil, &MissingFieldError{Field: name}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &MalformedScalarError{Field: name, Value: string(raw)}
	}

	out := make([]felt.Felt, len(items))
	for i, item := range items {
		element := fmt.Sprintf("%s[%d]", name, i)

		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, &MalformedScalarError{Field: element, Value: string(item)}
		}

		v, err := felt.FromHex(s)
		if err != nil {
			return nil, &MalformedScalarError{Field: element, Value: s}
		}

		out[i] = v
	}

	return out, nil
}

// nonNil makes sure arrays are written as [] rather than null.
func nonNil(s []felt.Felt) []felt.Felt {
	if s == nil {
		return []felt.Felt{}
	}
	return s
}
