// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package database

import (
	"sort"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
	"github.com/dusk-network/starknet-codec/pkg/core/data/transactions"
	"github.com/pkg/errors"
)

var (
	// ErrTxNotFound returned on a transaction lookup by hash.
	ErrTxNotFound = errors.New("database: transaction not found")
	// ErrMissingHash returned when storing a transaction without a transaction hash.
	ErrMissingHash = errors.New("database: transaction has no hash")
	// ErrReadOnly returned on a write to a database opened read-only.
	ErrReadOnly = errors.New("database: read-only")
)

// Record is the storage form of a transaction: its hash, kind and encoding.
type Record struct {
	Hash    felt.Felt
	Kind    transactions.TxType
	Encoded []byte
}

// NewRecord encodes a wrapper for storage.
func NewRecord(w transactions.Wrapper) (Record, error) {
	if w.IsEmpty() {
		return Record{}, transactions.ErrEmptyWrapper
	}

	hash := w.Hash()
	if hash == nil {
		return Record{}, ErrMissingHash
	}

	encoded, err := w.MarshalJSON()
	if err != nil {
		return Record{}, errors.Wrap(err, "could not encode transaction")
	}

	return Record{Hash: *hash, Kind: w.Type(), Encoded: encoded}, nil
}

// Key is the canonical hash text used as storage key.
func (r Record) Key() string {
	return r.Hash.String()
}

// DecodeRecord reads back a stored encoding.
func DecodeRecord(encoded []byte) (transactions.Wrapper, error) {
	w, err := transactions.Decode(encoded)
	if err != nil {
		return transactions.Wrapper{}, errors.Wrap(err, "corrupted transaction record")
	}
	return w, nil
}

// SortByHash orders stored transactions by numeric hash value. Stores
// compare keys as text, which puts 0x10 before 0x2.
func SortByHash(list []transactions.Wrapper) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Hash().Cmp(*list[j].Hash()) < 0
	})
}
