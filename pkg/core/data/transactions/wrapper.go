// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import (
	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
)

// Wrapper holds exactly one transaction of any variant. Type and version
// are read off the held transaction and never stored on their own.
type Wrapper struct {
	tx Transaction
}

// Wrap puts a transaction into a Wrapper.
func Wrap(tx Transaction) Wrapper {
	return Wrapper{tx: tx}
}

// Decode reads a transaction of any kind. The type and version fields pick
// the variant which then decodes the whole payload. Errors from the variant
// are returned as they are.
func Decode(data []byte) (Wrapper, error) {
	f, err := parseFields(data)
	if err != nil {
		return Wrapper{}, err
	}

	typeName, err := f.text(fieldType)
	if err != nil {
		return Wrapper{}, err
	}

	version, err := f.scalar(fieldVersion)
	if err != nil {
		return Wrapper{}, err
	}

	sel, err := resolve(typeName, version)
	if err != nil {
		return Wrapper{}, err
	}

	tx := sel.New()
	if err := decodeAs(f, tx); err != nil {
		return Wrapper{}, err
	}

	return Wrapper{tx: tx}, nil
}

// DecodeExpecting reads a transaction which must be of the given kind. The
// payload version picks the variant of that kind, the variant fields are
// decoded and only then the declared type is compared to kind.
func DecodeExpecting(data []byte, kind TxType) (Wrapper, error) {
	f, err := parseFields(data)
	if err != nil {
		return Wrapper{}, err
	}

	version, err := f.scalar(fieldVersion)
	if err != nil {
		return Wrapper{}, err
	}

	sel, err := resolve(kind.WireName(), version)
	if err != nil {
		return Wrapper{}, err
	}

	tx := sel.New()
	if err := decodeAs(f, tx); err != nil {
		return Wrapper{}, err
	}

	return Wrapper{tx: tx}, nil
}

// Encode writes the wire form of a transaction.
func Encode(tx Transaction) ([]byte, error) {
	if tx == nil {
		return nil, ErrEmptyWrapper
	}
	return tx.MarshalJSON()
}

// Transaction returns the held transaction, nil for an empty Wrapper.
// Use a type switch to reach the variant:
//
//	switch tx := w.Transaction().(type) {
//	case *InvokeV1:
func (w Wrapper) Transaction() Transaction {
	return w.tx
}

// Type of the held transaction.
func (w Wrapper) Type() TxType {
	if w.tx == nil {
		return UnknownTxType
	}
	return w.tx.Type()
}

// Version of the held transaction.
func (w Wrapper) Version() uint64 {
	if w.tx == nil {
		return 0
	}
	return w.tx.Version()
}

// Hash of the held transaction, nil when it has not been submitted.
func (w Wrapper) Hash() *felt.Felt {
	if w.tx == nil {
		return nil
	}
	return w.tx.Hash()
}

// IsEmpty reports whether the Wrapper holds no transaction.
func (w Wrapper) IsEmpty() bool {
	return w.tx == nil
}

// MarshalJSON delegates to the held transaction. The wrapper adds no field.
func (w Wrapper) MarshalJSON() ([]byte, error) {
	return Encode(w.tx)
}

// UnmarshalJSON decodes a transaction of any kind.
func (w *Wrapper) UnmarshalJSON(data []byte) error {
	d, err := Decode(data)
	if err != nil {
		return err
	}

	*w = d
	return nil
}
