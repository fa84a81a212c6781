// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import (
	"sort"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
)

type variantKey struct {
	kind    TxType
	version uint64
}

type variant struct {
	construct func() Transaction
	// required fields besides type and version
	fields []string
}

// catalogue holds every supported (kind, version) pair. There is no
// default entry: a pair missing here cannot be decoded.
var catalogue = map[variantKey]variant{
	{Invoke, 0}: {
		construct: func() Transaction { return new(InvokeV0) },
		fields:    []string{fieldContractAddress, fieldEntryPointSelector, fieldCalldata, fieldMaxFee, fieldSignature},
	},
	{Invoke, 1}: {
		construct: func() Transaction { return new(InvokeV1) },
		fields:    []string{fieldSenderAddress, fieldCalldata, fieldMaxFee, fieldSignature, fieldNonce},
	},
	{Declare, 0}: {
		construct: func() Transaction { return new(DeclareV0) },
		fields:    []string{fieldClassHash, fieldSenderAddress, fieldMaxFee, fieldSignature},
	},
	{Declare, 1}: {
		construct: func() Transaction { return new(DeclareV1) },
		fields:    []string{fieldClassHash, fieldSenderAddress, fieldMaxFee, fieldSignature, fieldNonce},
	},
	{Declare, 2}: {
		construct: func() Transaction { return new(DeclareV2) },
		fields:    []string{fieldClassHash, fieldCompiledClassHash, fieldSenderAddress, fieldMaxFee, fieldSignature, fieldNonce},
	},
	{Deploy, 0}: {
		construct: func() Transaction { return new(DeployV0) },
		fields:    []string{fieldClassHash, fieldConstructorCalldata, fieldContractAddressSalt},
	},
	{DeployAccount, 1}: {
		construct: func() Transaction { return new(DeployAccountV1) },
		fields:    []string{fieldClassHash, fieldConstructorCalldata, fieldContractAddressSalt, fieldMaxFee, fieldNonce, fieldSignature},
	},
	{L1Handler, 0}: {
		construct: func() Transaction { return new(L1HandlerV0) },
		fields:    []string{fieldContractAddress, fieldCalldata, fieldEntryPointSelector, fieldNonce},
	},
}

// Selector identifies one variant of the catalogue.
type Selector struct {
	Kind    TxType
	Version uint64
}

// New allocates an empty transaction of the selected variant. The selector
// must come from Resolve or Variants.
func (s Selector) New() Transaction {
	return catalogue[variantKey{s.Kind, s.Version}].construct()
}

// Fields returns the required wire fields of the variant, type and version
// excluded.
func (s Selector) Fields() []string {
	f := catalogue[variantKey{s.Kind, s.Version}].fields
	out := make([]string, len(f))
	copy(out, f)
	return out
}

// String returns e.g. "invoke v1".
func (s Selector) String() string {
	return variantName(s.Kind, s.Version)
}

// Resolve maps the type and version fields of a payload to a variant. The
// type is compared ignoring case, the version as an integer, so "0x00"
// selects the same variant as "0x0".
func Resolve(typeName, version string) (Selector, error) {
	v, err := felt.FromHex(version)
	if err != nil {
		return Selector{}, &MalformedScalarError{Field: fieldVersion, Value: version}
	}

	return resolve(typeName, v)
}

func resolve(typeName string, version felt.Felt) (Selector, error) {
	unknown := &UnknownCombinationError{Type: typeName, Version: version.String()}

	kind, ok := ParseTxType(typeName)
	if !ok {
		return Selector{}, unknown
	}

	v, ok := version.Uint64()
	if !ok {
		return Selector{}, unknown
	}

	if _, ok := catalogue[variantKey{kind, v}]; !ok {
		return Selector{}, unknown
	}

	return Selector{Kind: kind, Version: v}, nil
}

// Variants lists the catalogue ordered by kind, then version.
func Variants() []Selector {
	list := make([]Selector, 0, len(catalogue))
	for k := range catalogue {
		list = append(list, Selector{Kind: k.kind, Version: k.version})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Kind != list[j].Kind {
			return list[i].Kind < list[j].Kind
		}
		return list[i].Version < list[j].Version
	})

	return list
}

// RequiredFields returns the required wire fields of a variant, type and
// version excluded, or false if the pair is not in the catalogue.
func RequiredFields(kind TxType, version uint64) ([]string, bool) {
	if _, ok := catalogue[variantKey{kind, version}]; !ok {
		return nil, false
	}
	return Selector{Kind: kind, Version: version}.Fields(), true
}
