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

// DeployV0 is the legacy deploy transaction. It carries neither fee nor
// signature.
type DeployV0 struct {
	ClassHash           felt.Felt
	ConstructorCalldata []felt.Felt
	ContractAddressSalt felt.Felt
	TransactionHash     *felt.Felt
}

type deployV0JSON struct {
	ClassHash           felt.Felt   `json:"class_hash"`
	ConstructorCalldata []felt.Felt `json:"constructor_calldata"`
	ContractAddressSalt felt.Felt   `json:"contract_address_salt"`
	Type                string      `json:"type"`
	Version             felt.Felt   `json:"version"`
	TransactionHash     *felt.Felt  `json:"transaction_hash,omitempty"`
}

// Type of the transaction
func (t DeployV0) Type() TxType { return Deploy }

// Version of the transaction
func (t DeployV0) Version() uint64 { return 0 }

// Hash of the transaction, if observed
func (t DeployV0) Hash() *felt.Felt { return hashOf(t.TransactionHash) }

// MarshalJSON writes the wire form of the transaction
func (t DeployV0) MarshalJSON() ([]byte, error) {
	return json.Marshal(deployV0JSON{
		ClassHash:           t.ClassHash,
		ConstructorCalldata: nonNil(t.ConstructorCalldata),
		ContractAddressSalt: t.ContractAddressSalt,
		Type:                t.Type().EncodedName(),
		Version:             versionFelt(t.Version()),
		TransactionHash:     t.TransactionHash,
	})
}

// UnmarshalJSON decodes a deploy payload, rejecting any other type
func (t *DeployV0) UnmarshalJSON(data []byte) error {
	var v DeployV0
	if err := DecodeAs(data, &v); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *DeployV0) decodeFields(f fields) (err error) {
	if t.ClassHash, err = f.scalar(fieldClassHash); err != nil {
		return err
	}
	if t.ConstructorCalldata, err = f.scalars(fieldConstructorCalldata); err != nil {
		return err
	}
	if t.ContractAddressSalt, err = f.scalar(fieldContractAddressSalt); err != nil {
		return err
	}
	t.TransactionHash, err = f.optionalScalar(fieldTransactionHash)
	return err
}

// DeployAccountV1 deploys an account contract which pays for its own
// deployment.
type DeployAccountV1 struct {
	ClassHash           felt.Felt
	ConstructorCalldata []felt.Felt
	ContractAddressSalt felt.Felt
	MaxFee              felt.Felt
	Nonce               felt.Felt
	Signature           []felt.Felt
	TransactionHash     *felt.Felt
}

type deployAccountV1JSON struct {
	ClassHash           felt.Felt   `json:"class_hash"`
	ConstructorCalldata []felt.Felt `json:"constructor_calldata"`
	ContractAddressSalt felt.Felt   `json:"contract_address_salt"`
	MaxFee              felt.Felt   `json:"max_fee"`
	Nonce               felt.Felt   `json:"nonce"`
	Signature           []felt.Felt `json:"signature"`
	Type                string      `json:"type"`
	Version             felt.Felt   `json:"version"`
	TransactionHash     *felt.Felt  `json:"transaction_hash,omitempty"`
}

// Type of the transaction
func (t DeployAccountV1) Type() TxType { return DeployAccount }

// Version of the transaction
func (t DeployAccountV1) Version() uint64 { return 1 }

// Hash of the transaction, if observed
func (t DeployAccountV1) Hash() *felt.Felt { return hashOf(t.TransactionHash) }

// MarshalJSON writes the wire form of the transaction
func (t DeployAccountV1) MarshalJSON() ([]byte, error) {
	return json.Marshal(deployAccountV1JSON{
		ClassHash:           t.ClassHash,
		ConstructorCalldata: nonNil(t.ConstructorCalldata),
		ContractAddressSalt: t.ContractAddressSalt,
		MaxFee:              t.MaxFee,
		Nonce:               t.Nonce,
		Signature:           nonNil(t.Signature),
		Type:                t.Type().EncodedName(),
		Version:             versionFelt(t.Version()),
		TransactionHash:     t.TransactionHash,
	})
}

// UnmarshalJSON decodes a deploy account payload, rejecting any other type
func (t *DeployAccountV1) UnmarshalJSON(data []byte) error {
	var v DeployAccountV1
	if err := DecodeAs(data, &v); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t *DeployAccountV1) decodeFields(f fields) (err error) {
	if t.ClassHash, err = f.scalar(fieldClassHash); err != nil {
		return err
	}
	if t.ConstructorCalldata, err = f.scalars(fieldConstructorCalldata); err != nil {
		return err
	}
	if t.ContractAddressSalt, err = f.scalar(fieldContractAddressSalt); err != nil {
		return err
	}
	if t.MaxFee, err = f.scalar(fieldMaxFee); err != nil {
		return err
	}
	if t.Nonce, err = f.scalar(fieldNonce); err != nil {
		return err
	}
	if t.Signature, err = f.scalars(fieldSignature); err != nil {
		return err
	}
	t.TransactionHash, err = f.optionalScalar(fieldTransactionHash)
	return err
}
