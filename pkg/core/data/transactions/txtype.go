// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import "strings"

// TxType specifies the kind of a Starknet transaction. The set is closed:
// a new kind has to be added here and to the variant catalogue.
type TxType uint8

const (
	// UnknownTxType is the zero value. It is never produced by a successful decode.
	UnknownTxType TxType = iota
	// Invoke calls a function of a deployed contract
	Invoke
	// Declare registers a contract class
	Declare
	// Deploy deploys a contract through the legacy deploy transaction
	Deploy
	// DeployAccount deploys an account contract
	DeployAccount
	// L1Handler is a message sent from L1 and consumed by a contract
	L1Handler
)

// TxTypes lists every known kind in declaration order.
var TxTypes = []TxType{Invoke, Declare, Deploy, DeployAccount, L1Handler}

// String returns the canonical kind name.
func (t TxType) String() string {
	switch t {
	case Invoke:
		return "invoke"
	case Declare:
		return "declare"
	case Deploy:
		return "deploy"
	case DeployAccount:
		return "deployAccount"
	case L1Handler:
		return "l1Handler"
	default:
		return "unknown"
	}
}

// WireName returns the spelling sequencers and nodes use in the type field.
func (t TxType) WireName() string {
	switch t {
	case Invoke:
		return "INVOKE"
	case Declare:
		return "DECLARE"
	case Deploy:
		return "DEPLOY"
	case DeployAccount:
		return "DEPLOY_ACCOUNT"
	case L1Handler:
		return "L1_HANDLER"
	default:
		return "UNKNOWN"
	}
}

// EncodedName returns the type field value written by the encoder.
func (t TxType) EncodedName() string {
	return strings.ToLower(t.String())
}

// stringToTxType maps the upper-cased spellings accepted on decode. Both
// the wire spelling and the encoder's own spelling are present so that an
// encoded transaction decodes back.
var stringToTxType = map[string]TxType{
	"INVOKE":         Invoke,
	"DECLARE":        Declare,
	"DEPLOY":         Deploy,
	"DEPLOY_ACCOUNT": DeployAccount,
	"DEPLOYACCOUNT":  DeployAccount,
	"L1_HANDLER":     L1Handler,
	"L1HANDLER":      L1Handler,
}

// ParseTxType resolves a type field value, ignoring case.
func ParseTxType(s string) (TxType, bool) {
	t, ok := stringToTxType[strings.ToUpper(s)]
	return t, ok
}

// MarshalText renders the canonical kind name.
func (t TxType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
