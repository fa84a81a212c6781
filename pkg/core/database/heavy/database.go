// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package heavy

import (
	"os"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
	"github.com/dusk-network/starknet-codec/pkg/core/data/transactions"
	"github.com/dusk-network/starknet-codec/pkg/core/database"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	// txPrefix + hash -> encoded transaction
	txPrefix = []byte{0x01}
	// kindPrefix + kind + hash -> empty
	kindPrefix = []byte{0x02}
)

// DB on top of underlying storage syndtr/goleveldb/leveldb.
type DB struct {
	storage *leveldb.DB

	// Read-only mode provided at heavy.DB level. Not to be confused with
	// read-only goleveldb mode.
	readOnly bool
}

// openStorage is a wrapper around leveldb.OpenFile.
//
// leveldb.OpenFile returns a new filesystem-backed storage implementation with
// the given path. This also acquire a file lock, so any subsequent attempt to
// open the same path will fail until Close.
func openStorage(path string) (*leveldb.DB, error) {
	s, err := leveldb.OpenFile(path, nil)

	// Try to recover if corrupted.
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		s, err = leveldb.RecoverFile(path, nil)
	}

	if _, accessdenied := err.(*os.PathError); accessdenied {
		err = errors.New("could not open or create db")
	}

	return s, err
}

// NewDatabase create or open backend storage (goleveldb) located at the
// specified path.
func NewDatabase(path string, readonly bool) (*DB, error) {
	storage, err := openStorage(path)
	if err != nil {
		return nil, err
	}

	return &DB{storage: storage, readOnly: readonly}, nil
}

func txKey(hash felt.Felt) []byte {
	return append(append([]byte{}, txPrefix...), hash.String()...)
}

func kindKey(kind transactions.TxType, hash felt.Felt) []byte {
	key := append(append([]byte{}, kindPrefix...), byte(kind))
	return append(key, hash.String()...)
}

// Store implements database.DB. The transaction and its kind entry are
// written in one batch.
func (db *DB) Store(w transactions.Wrapper) error {
	if db.readOnly {
		return database.ErrReadOnly
	}

	r, err := database.NewRecord(w)
	if err != nil {
		return err
	}

	batch := new(leveldb.Batch)

	// A replaced transaction may be of another kind
	prev, err := db.Fetch(r.Hash)
	switch err {
	case nil:
		batch.Delete(kindKey(prev.Type(), r.Hash))
	case database.ErrTxNotFound:
	default:
		return err
	}

	batch.Put(txKey(r.Hash), r.Encoded)
	batch.Put(kindKey(r.Kind, r.Hash), nil)

	return db.storage.Write(batch, nil)
}

// Fetch implements database.DB.
func (db *DB) Fetch(hash felt.Felt) (transactions.Wrapper, error) {
	value, err := db.storage.Get(txKey(hash), nil)
	if err == leveldb.ErrNotFound {
		return transactions.Wrapper{}, database.ErrTxNotFound
	}

	if err != nil {
		return transactions.Wrapper{}, err
	}

	return database.DecodeRecord(value)
}

// FetchByType implements database.DB.
func (db *DB) FetchByType(kind transactions.TxType) ([]transactions.Wrapper, error) {
	prefix := append(append([]byte{}, kindPrefix...), byte(kind))

	snapshot, err := db.storage.GetSnapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	iter := snapshot.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	list := make([]transactions.Wrapper, 0)
	for iter.Next() {
		hash := iter.Key()[len(prefix):]

		value, err := snapshot.Get(append(append([]byte{}, txPrefix...), hash...), nil)
		if err != nil {
			return nil, err
		}

		w, err := database.DecodeRecord(value)
		if err != nil {
			return nil, err
		}
		list = append(list, w)
	}

	if err := iter.Error(); err != nil {
		return nil, err
	}

	database.SortByHash(list)
	return list, nil
}

// Delete implements database.DB.
func (db *DB) Delete(hash felt.Felt) error {
	if db.readOnly {
		return database.ErrReadOnly
	}

	w, err := db.Fetch(hash)
	if err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	batch.Delete(txKey(hash))
	batch.Delete(kindKey(w.Type(), hash))

	return db.storage.Write(batch, nil)
}

// Count implements database.DB.
func (db *DB) Count() (int, error) {
	iter := db.storage.NewIterator(util.BytesPrefix(txPrefix), nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		n++
	}

	return n, iter.Error()
}

// Close should safely close the underlying storage.
func (db *DB) Close() error {
	return db.storage.Close()
}
