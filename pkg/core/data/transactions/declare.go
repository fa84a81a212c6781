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

// DeclareV0 declares a contract class without nonce.
type DeclareV0 struct {
	ClassHash       felt.Felt
	SenderAddress   felt.Felt
	MaxFee          felt.Felt
	Signature       []felt.Felt
	TransactionHash *felt.Felt
}

type declareV0JSON struct {
	ClassHash       felt.Felt   `json:"class_hash"`
	SenderAddress   felt.Felt   `json:"sender_address"`
	MaxFee          felt.Felt   `json:"max_fee"`
	Signature       []felt.Felt `json:"signature"`
	Type            string      `json:"type"`
	Version         felt.Felt   `json:"version"`
	TransactionHash *felt.Felt  `json:"transaction_hash,omitempty"`
}

// Type of the transaction
func (t DeclareV0) Type() TxType { return Declare }

// Version of the transaction
func (t DeclareV0) Version() uint64 { return 0 }

// Hash of the transaction, if observed
func (t DeclareV0) Hash() *felt.Felt { return hashOf(t.TransactionHash) }

// MarshalJSON writes the wire form of the transaction
func (t DeclareV0) MarshalJSON() ([]byte, error) {
	return json.Marshal(declareV0JSON{
		ClassHash:       t.ClassHash,
		SenderAddress:   t.SenderAddress,
		MaxFee:          t.MaxFee,
		Signature:       nonNil(t.Signature),
		Type:            t.Type().EncodedName(),
		Version:         versionFelt(t.Version()),
		TransactionHash: t.TransactionHash,
	})
}

// UnmarshalJSON decodes a declare v0 payload, rejecting any other type
func (t *DeclareV0) UnmarshalJSON(data []byte) error {
	var v DeclareV0
	if err := DecodeAs(data, &v); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *DeclareV0) decodeFields(f fields) (err error) {
	if t.ClassHash, err = f.scalar(fieldClassHash); err != nil {
		return err
	}
	if t.SenderAddress, err = f.scalar(fieldSenderAddress); err != nil {
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

// DeclareV1 declares a contract class, with account nonce.
type DeclareV1 struct {
	ClassHash       felt.Felt
	SenderAddress   felt.Felt
	MaxFee          felt.Felt
	Signature       []felt.Felt
	Nonce           felt.Felt
	TransactionHash *felt.Felt
}

type declareV1JSON struct {
	ClassHash       felt.Felt   `json:"class_hash"`
	SenderAddress   felt.Felt   `json:"sender_address"`
	MaxFee          felt.Felt   `json:"max_fee"`
	Signature       []felt.Felt `json:"signature"`
	Nonce           felt.Felt   `json:"nonce"`
	Type            string      `json:"type"`
	Version         felt.Felt   `json:"version"`
	TransactionHash *felt.Felt  `json:"transaction_hash,omitempty"`
}

// Type of the transaction
func (t DeclareV1) Type() TxType { return Declare }

// Version of the transaction
func (t DeclareV1) Version() uint64 { return 1 }

// Hash of the transaction, if observed
func (t DeclareV1) Hash() *felt.Felt { return hashOf(t.TransactionHash) }

// MarshalJSON writes the wire form of the transaction
func (t DeclareV1) MarshalJSON() ([]byte, error) {
	return json.Marshal(declareV1JSON{
		ClassHash:       t.ClassHash,
		SenderAddress:   t.SenderAddress,
		MaxFee:          t.MaxFee,
		Signature:       nonNil(t.Signature),
		Nonce:           t.Nonce,
		Type:            t.Type().EncodedName(),
		Version:         versionFelt(t.Version()),
		TransactionHash: t.TransactionHash,
	})
}

// UnmarshalJSON decodes a declare v1 payload, rejecting any other type
func (t *DeclareV1) UnmarshalJSON(data []byte) error {
	var v DeclareV1
	if err := DecodeAs(data, &v); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *DeclareV1) decodeFields(f fields) (err error) {
	if t.ClassHash, err = f.scalar(fieldClassHash); err != nil {
		return err
	}
	if t.SenderAddress, err = f.scalar(fieldSenderAddress); err != nil {
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

// DeclareV2 declares a Sierra class together with the hash of its
// compiled form.
type DeclareV2 struct {
	ClassHash         felt.Felt
	CompiledClassHash felt.Felt
	SenderAddress     felt.Felt
	MaxFee            felt.Felt
	Signature         []felt.Felt
	Nonce             felt.Felt
	TransactionHash   *felt.Felt
}

type declareV2JSON struct {
	ClassHash         felt.Felt   `json:"class_hash"`
	CompiledClassHash felt.Felt   `json:"compiled_class_hash"`
	SenderAddress     felt.Felt   `json:"sender_address"`
	MaxFee            felt.Felt   `json:"max_fee"`
	Signature         []felt.Felt `json:"signature"`
	Nonce             felt.Felt   `json:"nonce"`
	Type              string      `json:"type"`
	Version           felt.Felt   `json:"version"`
	TransactionHash   *felt.Felt  `json:"transaction_hash,omitempty"`
}

// Type of the transaction
func (t DeclareV2) Type() TxType { return Declare }

// Version of the transaction
func (t DeclareV2) Version() uint64 { return 2 }

// Hash of the transaction, if observed
func (t DeclareV2) Hash() *felt.Felt { return hashOf(t.TransactionHash) }

// MarshalJSON writes the wire form of the transaction
func (t DeclareV2) MarshalJSON() ([]byte, error) {
	return json.Marshal(declareV2JSON{
		ClassHash:         t.ClassHash,
		CompiledClassHash: t.CompiledClassHash,
		SenderAddress:     t.SenderAddress,
		MaxFee:            t.MaxFee,
		Signature:         nonNil(t.Signature),
		Nonce:             t.Nonce,
		Type:              t.Type().EncodedName(),
		Version:           versionFelt(t.Version()),
		TransactionHash:   t.TransactionHash,
	})
}

// UnmarshalJSON decodes a declare v2 payload, rejecting any other type
func (t *DeclareV2) UnmarshalJSON(data []byte) error {
	var v DeclareV2
	if err := DecodeAs(data, &v); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *DeclareV2) decodeFields(f fields) (err error) {
	if t.ClassHash, err = f.scalar(fieldClassHash); err != nil {
		return err
	}
	if t.CompiledClassHash, err = f.scalar(fieldCompiledClassHash); err != nil {
		return err
	}
	if t.SenderAddress, err = f.scalar(fieldSenderAddress); err != nil {
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
