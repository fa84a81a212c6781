// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package lite

import (
	"os"
	"path/filepath"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
	"github.com/dusk-network/starknet-codec/pkg/core/data/transactions"
	"github.com/dusk-network/starknet-codec/pkg/core/database"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/buntdb"
)

var logger = log.WithField("process", "lite")

const (
	txPrefix  = "tx:"
	typeIndex = "type_index"
	fileName  = "transactions.db"
)

// DB keeps the encoded transactions in a buntdb store. Values are the
// encoded JSON, indexed on their type field.
type DB struct {
	storage  *buntdb.DB
	readOnly bool
}

// NewDatabase opens or creates the store at path with buntdb.EverySecond
// sync policy.
func NewDatabase(path string, readonly bool) (*DB, error) {
	file := ":memory:"
	if path != "" {
		if err := os.MkdirAll(path, os.ModePerm); err != nil {
			return nil, err
		}
		file = filepath.Join(path, fileName)
	}

	storage, err := buntdb.Open(file)
	if err != nil {
		return nil, err
	}

	var config buntdb.Config
	if err := storage.ReadConfig(&config); err != nil {
		_ = storage.Close()
		return nil, err
	}

	// Fast and safer sync policy.
	// In addition, syncing is done on closing.
	config.SyncPolicy = buntdb.EverySecond
	config.AutoShrinkDisabled = false

	if err := storage.SetConfig(config); err != nil {
		_ = storage.Close()
		return nil, err
	}

	if err := storage.CreateIndex(typeIndex, txPrefix+"*", buntdb.IndexJSON("type")); err != nil {
		_ = storage.Close()
		return nil, err
	}

	logger.WithField("file", file).Debug("store opened")
	return &DB{storage: storage, readOnly: readonly}, nil
}

func key(hash felt.Felt) string {
	return txPrefix + hash.String()
}

// Store implements database.DB.
func (db *DB) Store(w transactions.Wrapper) error {
	if db.readOnly {
		return database.ErrReadOnly
	}

	r, err := database.NewRecord(w)
	if err != nil {
		return err
	}

	return db.storage.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(txPrefix+r.Key(), string(r.Encoded), nil)
		return err
	})
}

// Fetch implements database.DB.
func (db *DB) Fetch(hash felt.Felt) (transactions.Wrapper, error) {
	var value string

	err := db.storage.View(func(tx *buntdb.Tx) error {
		var err error
		value, err = tx.Get(key(hash))
		return err
	})

	if err == buntdb.ErrNotFound {
		return transactions.Wrapper{}, database.ErrTxNotFound
	}

	if err != nil {
		return transactions.Wrapper{}, err
	}

	return database.DecodeRecord([]byte(value))
}

// FetchByType implements database.DB.
func (db *DB) FetchByType(kind transactions.TxType) ([]transactions.Wrapper, error) {
	pivot := `{"type":"` + kind.EncodedName() + `"}`

	var values []string
	err := db.storage.View(func(tx *buntdb.Tx) error {
		return tx.AscendEqual(typeIndex, pivot, func(k, value string) bool {
			values = append(values, value)
			return true
		})
	})
	if err != nil {
		return nil, err
	}

	list := make([]transactions.Wrapper, 0, len(values))
	for _, v := range values {
		w, err := database.DecodeRecord([]byte(v))
		if err != nil {
			return nil, err
		}
		list = append(list, w)
	}

	database.SortByHash(list)
	return list, nil
}

// Delete implements database.DB.
func (db *DB) Delete(hash felt.Felt) error {
	if db.readOnly {
		return database.ErrReadOnly
	}

	err := db.storage.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key(hash))
		return err
	})

	if err == buntdb.ErrNotFound {
		return database.ErrTxNotFound
	}
	return err
}

// Count implements database.DB.
func (db *DB) Count() (int, error) {
	var n int
	err := db.storage.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(txPrefix+"*", func(k, _ string) bool {
			n++
			return true
		})
	})
	return n, err
}

// Close syncs and closes the store.
func (db *DB) Close() error {
	if err := db.storage.Close(); err != nil {
		return errors.Wrap(err, "could not close lite store")
	}
	return nil
}
