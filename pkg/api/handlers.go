// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package api

import (
	"io/ioutil"
	"net/http"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
	"github.com/dusk-network/starknet-codec/pkg/core/data/transactions"
	"github.com/go-chi/render"
)

const maxBodySize = 1 << 20

// DecodeResponse describes a decoded transaction. Transaction holds the
// normalized encoding.
type DecodeResponse struct {
	Type        transactions.TxType  `json:"type"`
	Version     uint64               `json:"version"`
	Transaction transactions.Wrapper `json:"transaction"`
}

// StoreResponse acknowledges a stored transaction.
type StoreResponse struct {
	TransactionHash *felt.Felt `json:"transaction_hash"`
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	defer func() {
		_ = r.Body.Close()
	}()

	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		renderBadRequest(w, r, "could not read request body: "+err.Error())
		return nil, false
	}

	return body, true
}

// decodeTransaction decodes the body as a transaction of any kind, or of the
// kind named by the expect query parameter.
func (s *Server) decodeTransaction(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var (
		wrapper transactions.Wrapper
		err     error
	)

	if expect := r.URL.Query().Get("expect"); expect != "" {
		kind, ok := transactions.ParseTxType(expect)
		if !ok {
			renderBadRequest(w, r, "unknown transaction type "+expect)
			return
		}
		wrapper, err = transactions.DecodeExpecting(body, kind)
	} else {
		wrapper, err = transactions.Decode(body)
	}

	if err != nil {
		log.WithError(err).Debug("decode rejected")
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, DecodeResponse{
		Type:        wrapper.Type(),
		Version:     wrapper.Version(),
		Transaction: wrapper,
	})
}

// storeTransaction decodes and stores an observed transaction.
func (s *Server) storeTransaction(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	wrapper, err := transactions.Decode(body)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := s.db.Store(wrapper); err != nil {
		renderError(w, r, err)
		return
	}

	log.WithField("hash", wrapper.Hash()).WithField("type", wrapper.Type()).Debug("transaction stored")

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, StoreResponse{TransactionHash: wrapper.Hash()})
}

// getTransaction returns a stored transaction by hash.
func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	hash, err := felt.FromHex(r.URL.Query().Get(":hash"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	wrapper, err := s.db.Fetch(hash)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, wrapper)
}

// listTransactions returns the stored transactions of the kind given by the
// type query parameter.
func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("type")

	kind, ok := transactions.ParseTxType(name)
	if !ok {
		renderBadRequest(w, r, "unknown transaction type "+name)
		return
	}

	list, err := s.db.FetchByType(kind)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, list)
}
