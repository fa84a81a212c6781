// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import (
	"encoding/json"
	"fmt"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
)

// Transaction is implemented by every (kind, version) variant of the
// catalogue. The unexported method keeps the set closed to this package.
type Transaction interface {
	json.Marshaler

	// Type is the kind of the variant
	Type() TxType
	// Version is the protocol version of the variant
	Version() uint64
	// Hash returns the transaction hash of an observed transaction, or nil
	// for a transaction that has not been submitted yet.
	Hash() *felt.Felt

	decodeFields(f fields) error
}

// DecodeAs decodes a payload into the given variant, which the caller
// expects. All the variant's fields are decoded first, then the declared
// type and version are checked against the variant, so a payload shaped
// like an invoke but declaring another kind fails with a TypeMismatchError.
//
// tx should be freshly allocated; its content is undefined when an error
// is returned.
func DecodeAs(data []byte, tx Transaction) error {
	f, err := parseFields(data)
	if err != nil {
		return err
	}

	return decodeAs(f, tx)
}

func decodeAs(f fields, tx Transaction) error {
	if err := tx.decodeFields(f); err != nil {
		return err
	}

	declared, err := f.text(fieldType)
	if err != nil {
		return err
	}

	if kind, ok := ParseTxType(declared); !ok || kind != tx.Type() {
		return &TypeMismatchError{Expected: tx.Type().WireName(), Actual: declared}
	}

	version, err := f.scalar(fieldVersion)
	if err != nil {
		return err
	}

	if v, ok := version.Uint64(); !ok || v != tx.Version() {
		return &TypeMismatchError{
			Expected: variantName(tx.Type(), tx.Version()),
			Actual:   fmt.Sprintf("%s %s", tx.Type(), version),
		}
	}

	return nil
}

func variantName(t TxType, version uint64) string {
	return fmt.Sprintf("%s v%d", t, version)
}

// versionFelt is the wire form of a variant version.
func versionFelt(version uint64) felt.Felt {
	return felt.FromUint64(version)
}

// hashOf hands out a copy so the held hash cannot be replaced by callers.
func hashOf(h *felt.Felt) *felt.Felt {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}
