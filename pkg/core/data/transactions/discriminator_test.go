// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import (
	"fmt"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestResolveCatalogue(t *testing.T) {
	assert := assert.New(t)

	tt := []struct {
		typeName string
		version  string
		tx       Transaction
	}{
		{"INVOKE", "0x0", new(InvokeV0)},
		{"INVOKE", "0x1", new(InvokeV1)},
		{"DECLARE", "0x0", new(DeclareV0)},
		{"DECLARE", "0x1", new(DeclareV1)},
		{"DECLARE", "0x2", new(DeclareV2)},
		{"DEPLOY", "0x0", new(DeployV0)},
		{"DEPLOY_ACCOUNT", "0x1", new(DeployAccountV1)},
		{"L1_HANDLER", "0x0", new(L1HandlerV0)},
	}

	for _, tc := range tt {
		sel, err := Resolve(tc.typeName, tc.version)
		assert.NoError(err)
		assert.IsType(tc.tx, sel.New())
		assert.Equal(tc.tx.Type(), sel.Kind)
		assert.Equal(tc.tx.Version(), sel.Version)
	}

	assert.Len(Variants(), len(tt))
}

func TestResolveRejectsUnknownPairs(t *testing.T) {
	assert := assert.New(t)

	known := make(map[Selector]bool)
	for _, sel := range Variants() {
		known[sel] = true
	}

	for _, kind := range TxTypes {
		for v := uint64(0); v < 8; v++ {
			sel, err := Resolve(kind.WireName(), fmt.Sprintf("0x%x", v))
			if known[Selector{kind, v}] {
				assert.NoError(err)
				assert.Equal(Selector{kind, v}, sel)
				continue
			}
			assert.True(IsUnknownCombination(err), "%s %d", kind, v)
		}
	}

	for _, name := range []string{"", "INVOKE_FUNCTION", "TRANSFER", "UNKNOWN"} {
		_, err := Resolve(name, "0x0")
		assert.True(IsUnknownCombination(err), name)
	}
}

func TestResolveComparesVersionAsInteger(t *testing.T) {
	assert := assert.New(t)

	a, err := Resolve("invoke", "0x00")
	assert.NoError(err)

	b, err := Resolve("Invoke", "0x0")
	assert.NoError(err)
	assert.Equal(a, b)

	c, err := Resolve("DECLARE", "0x0000002")
	assert.NoError(err)
	assert.Equal(Selector{Declare, 2}, c)
}

func TestResolveMalformedVersion(t *testing.T) {
	assert := assert.New(t)

	_, err := Resolve("INVOKE", "1")
	assert.True(IsMalformedScalar(err))
}

func TestVariantsOrder(t *testing.T) {
	assert := assert.New(t)

	list := Variants()
	assert.Equal(Selector{Invoke, 0}, list[0])
	assert.Equal(Selector{L1Handler, 0}, list[len(list)-1])

	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		assert.True(prev.Kind < cur.Kind || (prev.Kind == cur.Kind && prev.Version < cur.Version))
	}
}

func TestRequiredFields(t *testing.T) {
	assert := assert.New(t)

	f, ok := RequiredFields(Invoke, 1)
	assert.True(ok)
	assert.Equal([]string{"sender_address", "calldata", "max_fee", "signature", "nonce"}, f)

	// callers get their own copy
	f[0] = "changed"
	again, _ := RequiredFields(Invoke, 1)
	assert.Equal("sender_address", again[0])

	f, ok = RequiredFields(Deploy, 0)
	assert.True(ok)
	assert.Equal([]string{"class_hash", "constructor_calldata", "contract_address_salt"}, f)

	_, ok = RequiredFields(Deploy, 1)
	assert.False(ok)
}

func TestParseTxType(t *testing.T) {
	assert := assert.New(t)

	tt := []struct {
		in   string
		kind TxType
	}{
		{"INVOKE", Invoke},
		{"invoke", Invoke},
		{"Declare", Declare},
		{"DEPLOY", Deploy},
		{"DEPLOY_ACCOUNT", DeployAccount},
		{"deploy_account", DeployAccount},
		{"deployAccount", DeployAccount},
		{"deployaccount", DeployAccount},
		{"L1_HANDLER", L1Handler},
		{"l1Handler", L1Handler},
	}

	for _, tc := range tt {
		kind, ok := ParseTxType(tc.in)
		assert.True(ok, tc.in)
		assert.Equal(tc.kind, kind, tc.in)
	}

	_, ok := ParseTxType("deploy account")
	assert.False(ok)

	for _, kind := range TxTypes {
		back, ok := ParseTxType(kind.EncodedName())
		assert.True(ok)
		assert.Equal(kind, back)
	}
}
