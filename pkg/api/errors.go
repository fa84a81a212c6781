// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package api

import (
	"net/http"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
	"github.com/dusk-network/starknet-codec/pkg/core/data/transactions"
	"github.com/dusk-network/starknet-codec/pkg/core/database"
	"github.com/go-chi/render"
	"github.com/pkg/errors"
)

// Error kinds reported in the kind field of an error response.
const (
	KindMalformedScalar    = "malformed_scalar"
	KindMissingField       = "missing_field"
	KindTypeMismatch       = "type_mismatch"
	KindUnknownCombination = "unknown_combination"
	KindMalformedPayload   = "malformed_payload"
	KindBadRequest         = "bad_request"
	KindNotFound           = "not_found"
	KindInternal           = "internal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// classify maps an error to its HTTP status and kind.
func classify(err error) (int, string) {
	switch {
	case transactions.IsMalformedScalar(err), errors.Is(err, felt.ErrMalformedScalar):
		return http.StatusBadRequest, KindMalformedScalar
	case transactions.IsMissingField(err), errors.Is(err, database.ErrMissingHash):
		return http.StatusBadRequest, KindMissingField
	case transactions.IsTypeMismatch(err):
		return http.StatusBadRequest, KindTypeMismatch
	case transactions.IsUnknownCombination(err):
		return http.StatusBadRequest, KindUnknownCombination
	case errors.Is(err, transactions.ErrMalformedPayload):
		return http.StatusBadRequest, KindMalformedPayload
	case errors.Is(err, database.ErrTxNotFound):
		return http.StatusNotFound, KindNotFound
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error(), Kind: kind})
}

func renderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{Error: msg, Kind: KindBadRequest})
}
