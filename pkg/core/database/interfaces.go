// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package database

import (
	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
	"github.com/dusk-network/starknet-codec/pkg/core/data/transactions"
)

// Driver is the interface that must be implemented by a database
// driver.
type Driver interface {
	// Open returns a new connection to the database.
	// The path is a string in a driver-specific format.
	Open(path string, readonly bool) (DB, error)
	// Name returns a unique identifier that can be used to register
	// the driver.
	Name() string
}

// DB stores observed transactions keyed by their transaction hash.
// A Database driver must provide a robust implementation of each method.
// Transactions are kept in their encoded form and decoded back on read, so
// what comes out of a DB is what Encode produced.
type DB interface {
	// Store writes a transaction which must carry a transaction hash.
	// Storing a hash already present replaces the previous transaction.
	Store(w transactions.Wrapper) error
	// Fetch returns ErrTxNotFound if the hash is unknown.
	Fetch(hash felt.Felt) (transactions.Wrapper, error)
	// FetchByType returns all stored transactions of a kind, ordered by hash.
	FetchByType(kind transactions.TxType) ([]transactions.Wrapper, error)
	// Delete returns ErrTxNotFound if the hash is unknown.
	Delete(hash felt.Felt) error
	Count() (int, error)
	Close() error
}
