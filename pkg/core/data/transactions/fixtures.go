// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import "github.com/dusk-network/starknet-codec/pkg/core/data/felt"

// Observed transactions, one per variant, as a node returns them.
const (
	InvokeV0Fixture        = `{"contract_address":"0x123","calldata":["0x1","0x2"],"entry_point_selector":"0x123","max_fee":"0x859","signature":["0x1","0x2"],"type":"INVOKE","version":"0x0","transaction_hash":"0x111"}`
	InvokeV1Fixture        = `{"sender_address":"0x123","calldata":["0x1","0x2"],"max_fee":"0x859","signature":["0x1","0x2"],"nonce":"0x0","type":"INVOKE","version":"0x1","transaction_hash":"0x111"}`
	DeclareV0Fixture       = `{"class_hash":"0x123","sender_address":"0x123","max_fee":"0x859","signature":["0x1","0x2"],"type":"DECLARE","version":"0x0","transaction_hash":"0x111"}`
	DeclareV1Fixture       = `{"class_hash":"0x123","sender_address":"0x123","max_fee":"0x859","signature":["0x1","0x2"],"nonce":"0x0","type":"DECLARE","version":"0x1","transaction_hash":"0x111"}`
	DeclareV2Fixture       = `{"class_hash":"0x123","compiled_class_hash":"0x123","sender_address":"0x123","max_fee":"0x859","signature":["0x1","0x2"],"nonce":"0x0","type":"DECLARE","version":"0x2","transaction_hash":"0x111"}`
	DeployV0Fixture        = `{"class_hash":"0x123","constructor_calldata":["0x1","0x2"],"contract_address_salt":"0x123","type":"DEPLOY","version":"0x0","transaction_hash":"0x111"}`
	DeployAccountV1Fixture = `{"class_hash":"0x123","constructor_calldata":["0x1","0x2"],"contract_address_salt":"0x123","type":"DEPLOY_ACCOUNT","version":"0x1","max_fee":"0x123","nonce":"0x0","signature":["0x1","0x2"],"transaction_hash":"0x111"}`
	L1HandlerV0Fixture     = `{"contract_address":"0x123","calldata":["0x1","0x2"],"entry_point_selector":"0x123","nonce":"0x123","type":"L1_HANDLER","version":"0x0","transaction_hash":"0x111"}`
)

// Fixtures maps every variant of the catalogue to its fixture.
var Fixtures = map[Selector]string{
	{Invoke, 0}:        InvokeV0Fixture,
	{Invoke, 1}:        InvokeV1Fixture,
	{Declare, 0}:       DeclareV0Fixture,
	{Declare, 1}:       DeclareV1Fixture,
	{Declare, 2}:       DeclareV2Fixture,
	{Deploy, 0}:        DeployV0Fixture,
	{DeployAccount, 1}: DeployAccountV1Fixture,
	{L1Handler, 0}:     L1HandlerV0Fixture,
}

func felts(values ...uint64) []felt.Felt {
	out := make([]felt.Felt, len(values))
	for i, v := range values {
		out[i] = felt.FromUint64(v)
	}
	return out
}

// MockInvoke builds a locally constructed invoke v1 transaction, not yet
// submitted.
func MockInvoke() *InvokeV1 {
	return &InvokeV1{
		SenderAddress: felt.MustFromHex("0x123"),
		Calldata:      felts(1, 2),
		MaxFee:        felt.MustFromHex("0x859"),
		Signature:     felts(1, 2),
		Nonce:         felt.FromUint64(0),
	}
}

// MockObserved returns a wrapper around the transaction of the given
// variant carrying the given hash.
func MockObserved(sel Selector, hash uint64) Wrapper {
	h := felt.FromUint64(hash)

	var tx Transaction
	switch sel {
	case Selector{Invoke, 0}:
		tx = &InvokeV0{ContractAddress: felt.FromUint64(0x123), EntryPointSelector: felt.FromUint64(0x123), Calldata: felts(1, 2), MaxFee: felt.FromUint64(0x859), Signature: felts(1, 2), TransactionHash: &h}
	case Selector{Invoke, 1}:
		inv := MockInvoke()
		inv.TransactionHash = &h
		tx = inv
	case Selector{Declare, 0}:
		tx = &DeclareV0{ClassHash: felt.FromUint64(0x123), SenderAddress: felt.FromUint64(0x123), MaxFee: felt.FromUint64(0x859), Signature: felts(1, 2), TransactionHash: &h}
	case Selector{Declare, 1}:
		tx = &DeclareV1{ClassHash: felt.FromUint64(0x123), SenderAddress: felt.FromUint64(0x123), MaxFee: felt.FromUint64(0x859), Signature: felts(1, 2), Nonce: felt.FromUint64(0), TransactionHash: &h}
	case Selector{Declare, 2}:
		tx = &DeclareV2{ClassHash: felt.FromUint64(0x123), CompiledClassHash: felt.FromUint64(0x123), SenderAddress: felt.FromUint64(0x123), MaxFee: felt.FromUint64(0x859), Signature: felts(1, 2), Nonce: felt.FromUint64(0), TransactionHash: &h}
	case Selector{Deploy, 0}:
		tx = &DeployV0{ClassHash: felt.FromUint64(0x123), ConstructorCalldata: felts(1, 2), ContractAddressSalt: felt.FromUint64(0x123), TransactionHash: &h}
	case Selector{DeployAccount, 1}:
		tx = &DeployAccountV1{ClassHash: felt.FromUint64(0x123), ConstructorCalldata: felts(1, 2), ContractAddressSalt: felt.FromUint64(0x123), MaxFee: felt.FromUint64(0x123), Nonce: felt.FromUint64(0), Signature: felts(1, 2), TransactionHash: &h}
	case Selector{L1Handler, 0}:
		tx = &L1HandlerV0{ContractAddress: felt.FromUint64(0x123), Calldata: felts(1, 2), EntryPointSelector: felt.FromUint64(0x123), Nonce: felt.FromUint64(0x123), TransactionHash: &h}
	default:
		panic("no mock for " + sel.String())
	}

	return Wrap(tx)
}
