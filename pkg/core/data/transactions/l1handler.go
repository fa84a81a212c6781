// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import (
	"encoding/json"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
)

// L1HandlerV0 is the L2 side of a message sent from L1.
type L1HandlerV0 struct {
	ContractAddress    felt.Felt
	Calldata           []felt.Felt
	EntryPointSelector felt.Felt
	Nonce              felt.Felt
	TransactionHash    *felt.Felt
}

type l1HandlerV0JSON struct {
	ContractAddress    felt.Felt   `json:"contract_address"`
	Calldata           []felt.Felt `json:"calldata"`
	EntryPointSelector felt.Felt   `json:"entry_point_selector"`
	Nonce              felt.Felt   `json:"nonce"`
	Type               string      `json:"type"`
	Version            felt.Felt   `json:"version"`
	TransactionHash    *felt.Felt  `json:"transaction_hash,omitempty"`
}

// Type of the transaction
func (t L1HandlerV0) Type() TxType { return L1Handler }

// Version of the transaction
func (t L1HandlerV0) Version() uint64 { return 0 }

// Hash of the transaction, if observed
func (t L1HandlerV0) Hash() *felt.Felt { return hashOf(t.TransactionHash) }

// MarshalJSON writes the wire form of the transaction
func (t L1HandlerV0) MarshalJSON() ([]byte, error) {
	return json.Marshal(l1HandlerV0JSON{
		ContractAddress:    t.ContractAddress,
		Calldata:           nonNil(t.Calldata),
		EntryPointSelector: t.EntryPointSelector,
		Nonce:              t.Nonce,
		Type:               t.Type().EncodedName(),
		Version:            versionFelt(t.Version()),
		TransactionHash:    t.TransactionHash,
	})
}

// UnmarshalJSON decodes an L1 handler payload, rejecting any other type
func (t *L1HandlerV0) UnmarshalJSON(data []byte) error {
	var v L1HandlerV0
	if err := DecodeAs(data, &v); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *L1HandlerV0) decodeFields(f fields) (err error) {
	if t.ContractAddress, err = f.scalar(fieldContractAddress); err != nil {
		return err
	}
	if t.Calldata, err = f.scalars(fieldCalldata); err != nil {
		return err
	}
	if t.EntryPointSelector, err = f.scalar(fieldEntryPointSelector); err != nil {
		return err
	}
	if t.Nonce, err = f.scalar(fieldNonce); err != nil {
		return err
	}
	t.TransactionHash, err = f.optionalScalar(fieldTransactionHash)
	return err
}
