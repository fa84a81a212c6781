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

// InvokeV0 calls an entry point of a contract directly.
type InvokeV0 struct {
	ContractAddress    felt.Felt
	EntryPointSelector felt.Felt
	Calldata           []felt.Felt
	MaxFee             felt.Felt
	Signature          []felt.Felt
	TransactionHash    *felt.Felt
}

type invokeV0JSON struct {
	ContractAddress    felt.Felt   `json:"contract_address"`
	EntryPointSelector felt.Felt   `json:"entry_point_selector"`
	Calldata           []felt.Felt `json:"calldata"`
	MaxFee             felt.Felt   `json:"max_fee"`
	Signature          []felt.Felt `json:"signature"`
	Type               string      `json:"type"`
	Version            felt.Felt   `json:"version"`
	TransactionHash    *felt.Felt  `json:"transaction_hash,omitempty"`
}

// Type of the transaction
func (t InvokeV0) Type() TxType { return Invoke }

// Version of the transaction
func (t InvokeV0) Version() uint64 { return 0 }

// Hash of the transaction, if observed
func (t InvokeV0) Hash() *felt.Felt { return hashOf(t.TransactionHash) }

// MarshalJSON writes the wire form of the transaction
func (t InvokeV0) MarshalJSON() ([]byte, error) {
	return json.Marshal(invokeV0JSON{
		ContractAddress:    t.ContractAddress,
		EntryPointSelector: t.EntryPointSelector,
		Calldata:           nonNil(t.Calldata),
		MaxFee:             t.MaxFee,
		Signature:          nonNil(t.Signature),
		Type:               t.Type().EncodedName(),
		Version:            versionFelt(t.Version()),
		TransactionHash:    t.TransactionHash,
	})
}

// UnmarshalJSON decodes an invoke v0 payload, rejecting any other type
func (t *InvokeV0) UnmarshalJSON(data []byte) error {
	var v InvokeV0
	if err := DecodeAs(data, &v); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *InvokeV0) decodeFields(f fields) (err error) {
	if t.ContractAddress, err = f.scalar(fieldContractAddress); err != nil {
		return err
	}
	if t.EntryPointSelector, err = f.scalar(fieldEntryPointSelector); err != nil {
		return err
	}
	if t.Calldata, err = f.scalars(fieldCalldata); err != nil {
		return err
	}
	if t.MaxFee, err = f.scalar(fieldMaxFee); err != nil {
		return err
	}
	if t.Signature, err = f.scalars(fieldSignature); err != nil {
		return err
	}
	t.TransactionHash, err = f.optionalScalar(fieldTransactionHash)
	return err
}

// InvokeV1 executes a call through an account contract.
type InvokeV1 struct {
	SenderAddress   felt.Felt
	Calldata        []felt.Felt
	MaxFee          felt.Felt
	Signature       []felt.Felt
	Nonce           felt.Felt
	TransactionHash *felt.Felt
}

type invokeV1JSON struct {
	SenderAddress   felt.Felt   `json:"sender_address"`
	Calldata        []felt.Felt `json:"calldata"`
	MaxFee          felt.Felt   `json:"max_fee"`
	Signature       []felt.Felt `json:"signature"`
	Nonce           felt.Felt   `json:"nonce"`
	Type            string      `json:"type"`
	Version         felt.Felt   `json:"version"`
	TransactionHash *felt.Felt  `json:"transaction_hash,omitempty"`
}

// Type of the transaction
func (t InvokeV1) Type() TxType { return Invoke }

// Version of the transaction
func (t InvokeV1) Version() uint64 { return 1 }

// Hash of the transaction, if observed
func (t InvokeV1) Hash() *felt.Felt { return hashOf(t.TransactionHash) }

// MarshalJSON writes the wire form of the transaction
func (t InvokeV1) MarshalJSON() ([]byte, error) {
	return json.Marshal(invokeV1JSON{
		SenderAddress:   t.SenderAddress,
		Calldata:        nonNil(t.Calldata),
		MaxFee:          t.MaxFee,
		Signature:       nonNil(t.Signature),
		Nonce:           t.Nonce,
		Type:            t.Type().EncodedName(),
		Version:         versionFelt(t.Version()),
		TransactionHash: t.TransactionHash,
	})
}

// UnmarshalJSON decodes an invoke v1 payload, rejecting any other type
func (t *InvokeV1) UnmarshalJSON(data []byte) error {
	var v InvokeV1
	if err := DecodeAs(data, &v); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *InvokeV1) decodeFields(f fields) (err error) {
	if t.SenderAddress, err = f.scalar(fieldSenderAddress); err != nil {
		return err
	}
	if t.Calldata, err = f.scalars(fieldCalldata); err != nil {
		return err
	}
	if t.MaxFee, err = f.scalar(fieldMaxFee); err != nil {
		return err
	}
	if t.Signature, err = f.scalars(fieldSignature); err != nil {
		return err
	}
	if t.Nonce, err = f.scalar(fieldNonce); err != nil {
		return err
	}
	t.TransactionHash, err = f.optionalScalar(fieldTransactionHash)
	return err
}
