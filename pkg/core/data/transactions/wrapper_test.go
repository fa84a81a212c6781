// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/dusk-network/starknet-codec/pkg/core/data/felt"
	"github.com/pkg/errors"
	assert "github.com/stretchr/testify/require"
)

// edit returns the fixture with the given members replaced, or removed when
// the value is nil.
func edit(t *testing.T, fixture string, changes map[string]interface{}) []byte {
	var m map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal([]byte(fixture), &m))

	for k, v := range changes {
		if v == nil {
			delete(m, k)
			continue
		}

		b, err := json.Marshal(v)
		assert.NoError(t, err)
		m[k] = b
	}

	b, err := json.Marshal(m)
	assert.NoError(t, err)
	return b
}

func keys(t *testing.T, encoded []byte) []string {
	var m map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(encoded, &m))

	list := make([]string, 0, len(m))
	for k := range m {
		list = append(list, k)
	}
	sort.Strings(list)
	return list
}

func TestTransactionWrapperDecoding(t *testing.T) {
	assert := assert.New(t)

	for sel, fixture := range Fixtures {
		w, err := Decode([]byte(fixture))
		assert.NoError(err, sel.String())
		assert.Equal(sel.Kind, w.Type(), sel.String())
		assert.Equal(sel.Version, w.Version(), sel.String())
		assert.Equal("0x111", w.Hash().String(), sel.String())
	}
}

func TestDecodeInvokeV1(t *testing.T) {
	assert := assert.New(t)

	w, err := Decode([]byte(InvokeV1Fixture))
	assert.NoError(err)
	assert.Equal(Invoke, w.Type())
	assert.Equal(uint64(1), w.Version())

	tx, ok := w.Transaction().(*InvokeV1)
	assert.True(ok)
	assert.Equal("0x123", tx.SenderAddress.String())
	assert.Equal("0x859", tx.MaxFee.String())
	assert.True(tx.Nonce.IsZero())
	assert.Len(tx.Calldata, 2)
	assert.Len(tx.Signature, 2)
	assert.Equal("0x111", tx.TransactionHash.String())
}

func TestDecodeDeployAccount(t *testing.T) {
	assert := assert.New(t)

	w, err := Decode([]byte(DeployAccountV1Fixture))
	assert.NoError(err)
	assert.Equal(DeployAccount, w.Type())
	assert.Equal(uint64(1), w.Version())

	tx, ok := w.Transaction().(*DeployAccountV1)
	assert.True(ok)
	assert.Equal("0x123", tx.MaxFee.String())
	assert.Equal([]string{"0x1", "0x2"}, strs(tx.ConstructorCalldata))
}

func strs(list []felt.Felt) []string {
	out := make([]string, len(list))
	for i, f := range list {
		out[i] = f.String()
	}
	return out
}

func TestInvokeTransactionEncoding(t *testing.T) {
	assert := assert.New(t)

	encoded, err := Encode(MockInvoke())
	assert.NoError(err)

	pairs := []string{
		`"sender_address":"0x123"`,
		`"calldata":["0x1","0x2"]`,
		`"max_fee":"0x859"`,
		`"signature":["0x1","0x2"]`,
		`"nonce":"0x0"`,
		`"type":"invoke"`,
		`"version":"0x1"`,
	}

	for _, p := range pairs {
		assert.Contains(string(encoded), p)
	}

	assert.NotContains(string(encoded), "transaction_hash")
	assert.Len(keys(t, encoded), 7)
}

func TestUnknownCombination(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(edit(t, InvokeV1Fixture, map[string]interface{}{"version": "0x9"}))
	assert.True(IsUnknownCombination(err))

	var uc *UnknownCombinationError
	assert.True(errors.As(err, &uc))
	assert.Equal("INVOKE", uc.Type)
	assert.Equal("0x9", uc.Version)

	_, err = Decode(edit(t, InvokeV1Fixture, map[string]interface{}{"type": "DEPLOY"}))
	assert.True(IsUnknownCombination(err))

	_, err = Decode(edit(t, InvokeV1Fixture, map[string]interface{}{"type": "TRANSFER"}))
	assert.True(IsUnknownCombination(err))

	_, err = Decode(edit(t, InvokeV1Fixture, map[string]interface{}{"version": "0x" + strings.Repeat("1", 40)}))
	assert.True(IsUnknownCombination(err))
}

// decode(encode(v)) == v, compared through the canonical encoding which
// carries every field of the variant.
func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, sel := range Variants() {
		original := MockObserved(sel, 0xabc)

		encoded, err := json.Marshal(original)
		assert.NoError(err, sel.String())

		decoded, err := Decode(encoded)
		assert.NoError(err, sel.String())
		assert.Equal(sel.Kind, decoded.Type())
		assert.Equal(sel.Version, decoded.Version())
		assert.Equal("0xabc", decoded.Hash().String())

		reencoded, err := json.Marshal(decoded)
		assert.NoError(err)
		assert.JSONEq(string(encoded), string(reencoded), sel.String())
	}
}

// normalizing a fixture once is enough
func TestFixtureNormalizationIsStable(t *testing.T) {
	assert := assert.New(t)

	for sel, fixture := range Fixtures {
		first, err := Decode([]byte(fixture))
		assert.NoError(err)

		once, err := Encode(first.Transaction())
		assert.NoError(err)

		second, err := Decode(once)
		assert.NoError(err, sel.String())

		twice, err := Encode(second.Transaction())
		assert.NoError(err)
		assert.Equal(string(once), string(twice), sel.String())
	}
}

func TestEncodeFieldSet(t *testing.T) {
	assert := assert.New(t)

	for _, sel := range Variants() {
		required := sel.Fields()
		expected := append(required, "type", "version")
		sort.Strings(expected)

		observed := MockObserved(sel, 1)

		// without hash: a locally built transaction
		local := sel.New()
		assert.NoError(DecodeAs(edit(t, Fixtures[sel], map[string]interface{}{"transaction_hash": nil}), local))
		assert.Nil(local.Hash())

		encoded, err := Encode(local)
		assert.NoError(err)
		assert.Equal(expected, keys(t, encoded), sel.String())

		// with hash
		encoded, err = json.Marshal(observed)
		assert.NoError(err)

		withHash := append(append([]string{}, expected...), "transaction_hash")
		sort.Strings(withHash)
		assert.Equal(withHash, keys(t, encoded), sel.String())

		var m map[string]interface{}
		assert.NoError(json.Unmarshal(encoded, &m))
		assert.Equal(strings.ToLower(sel.Kind.String()), m["type"])
		assert.Equal(fmt.Sprintf("0x%x", sel.Version), m["version"])
	}
}

func TestDeployHasNoFeeNorSignature(t *testing.T) {
	assert := assert.New(t)

	encoded, err := json.Marshal(MockObserved(Selector{Deploy, 0}, 1))
	assert.NoError(err)
	assert.NotContains(string(encoded), "max_fee")
	assert.NotContains(string(encoded), "signature")
	assert.NotContains(string(encoded), "nonce")
}

func TestMissingField(t *testing.T) {
	assert := assert.New(t)

	for sel, fixture := range Fixtures {
		for _, name := range append(sel.Fields(), "type", "version") {
			_, err := Decode(edit(t, fixture, map[string]interface{}{name: nil}))

			var mf *MissingFieldError
			assert.True(errors.As(err, &mf), "%s without %s: %v", sel, name, err)
			assert.Equal(name, mf.Field)
		}
	}
}

func TestNullIsMissing(t *testing.T) {
	assert := assert.New(t)

	payload := strings.Replace(InvokeV1Fixture, `"max_fee":"0x859"`, `"max_fee":null`, 1)
	_, err := Decode([]byte(payload))

	var mf *MissingFieldError
	assert.True(errors.As(err, &mf))
	assert.Equal("max_fee", mf.Field)
}

func TestTransactionHashIsOptional(t *testing.T) {
	assert := assert.New(t)

	for sel, fixture := range Fixtures {
		w, err := Decode(edit(t, fixture, map[string]interface{}{"transaction_hash": nil}))
		assert.NoError(err, sel.String())
		assert.Nil(w.Hash())
	}
}

func TestMalformedScalar(t *testing.T) {
	assert := assert.New(t)

	tt := []struct {
		changes map[string]interface{}
		field   string
	}{
		{map[string]interface{}{"max_fee": "0xzz"}, "max_fee"},
		{map[string]interface{}{"max_fee": "859"}, "max_fee"},
		{map[string]interface{}{"max_fee": 859}, "max_fee"},
		{map[string]interface{}{"calldata": []string{"0x1", "two"}}, "calldata[1]"},
		{map[string]interface{}{"calldata": "0x1"}, "calldata"},
		{map[string]interface{}{"signature": []interface{}{1}}, "signature[0]"},
		{map[string]interface{}{"version": "one"}, "version"},
		{map[string]interface{}{"version": 1}, "version"},
		{map[string]interface{}{"type": 3}, "type"},
		{map[string]interface{}{"transaction_hash": "0x1g"}, "transaction_hash"},
	}

	for _, tc := range tt {
		_, err := Decode(edit(t, InvokeV1Fixture, tc.changes))

		var ms *MalformedScalarError
		assert.True(errors.As(err, &ms), "%v: %v", tc.changes, err)
		assert.Equal(tc.field, ms.Field)
	}
}

func TestExtraFieldsAreIgnored(t *testing.T) {
	assert := assert.New(t)

	payload := edit(t, InvokeV1Fixture, map[string]interface{}{
		"entry_point_selector": "0x1",
		"l1_gas":               map[string]string{"max_amount": "0x0"},
	})

	w, err := Decode(payload)
	assert.NoError(err)

	encoded, err := json.Marshal(w)
	assert.NoError(err)
	assert.NotContains(string(encoded), "entry_point_selector")
	assert.NotContains(string(encoded), "l1_gas")
}

func TestArrayOrderIsPreserved(t *testing.T) {
	assert := assert.New(t)

	calldata := []string{"0x3", "0x1", "0x2", "0x1", "0x0"}
	w, err := Decode(edit(t, InvokeV1Fixture, map[string]interface{}{"calldata": calldata}))
	assert.NoError(err)
	assert.Equal(calldata, strs(w.Transaction().(*InvokeV1).Calldata))

	encoded, err := json.Marshal(w)
	assert.NoError(err)
	assert.Contains(string(encoded), `"calldata":["0x3","0x1","0x2","0x1","0x0"]`)
}

func TestEmptyArrays(t *testing.T) {
	assert := assert.New(t)

	w, err := Decode(edit(t, InvokeV1Fixture, map[string]interface{}{"calldata": []string{}}))
	assert.NoError(err)
	assert.Empty(w.Transaction().(*InvokeV1).Calldata)

	// nil arrays on a locally built transaction are written as []
	encoded, err := Encode(&InvokeV1{SenderAddress: felt.FromUint64(1)})
	assert.NoError(err)
	assert.Contains(string(encoded), `"calldata":[]`)
	assert.Contains(string(encoded), `"signature":[]`)
}

func TestLooseWireSpellings(t *testing.T) {
	assert := assert.New(t)

	w, err := Decode(edit(t, InvokeV0Fixture, map[string]interface{}{"type": "invoke", "version": "0x00"}))
	assert.NoError(err)
	assert.Equal(Invoke, w.Type())
	assert.Equal(uint64(0), w.Version())

	w, err = Decode(edit(t, L1HandlerV0Fixture, map[string]interface{}{"type": "l1_handler", "version": "0x"}))
	assert.NoError(err)
	assert.Equal(L1Handler, w.Type())
}

func TestEncodedSpellingDecodes(t *testing.T) {
	assert := assert.New(t)

	encoded, err := json.Marshal(MockObserved(Selector{DeployAccount, 1}, 7))
	assert.NoError(err)
	assert.Contains(string(encoded), `"type":"deployaccount"`)

	w, err := Decode(encoded)
	assert.NoError(err)
	assert.Equal(DeployAccount, w.Type())
}

func TestMalformedPayload(t *testing.T) {
	assert := assert.New(t)

	for _, in := range []string{"", "{", "null", "[]", `"INVOKE"`, "42"} {
		_, err := Decode([]byte(in))
		assert.True(errors.Is(err, ErrMalformedPayload), in)
	}
}

func TestEmptyWrapper(t *testing.T) {
	assert := assert.New(t)

	var w Wrapper
	assert.True(w.IsEmpty())
	assert.Equal(UnknownTxType, w.Type())
	assert.Nil(w.Hash())

	_, err := json.Marshal(w)
	assert.Error(err)
}

func TestWrapperInsideDocument(t *testing.T) {
	assert := assert.New(t)

	doc := fmt.Sprintf(`{"transactions":[%s,%s,%s]}`, InvokeV1Fixture, DeployV0Fixture, L1HandlerV0Fixture)

	var block struct {
		Transactions []Wrapper `json:"transactions"`
	}
	assert.NoError(json.Unmarshal([]byte(doc), &block))
	assert.Len(block.Transactions, 3)
	assert.Equal(Invoke, block.Transactions[0].Type())
	assert.Equal(Deploy, block.Transactions[1].Type())
	assert.Equal(L1Handler, block.Transactions[2].Type())

	bad := fmt.Sprintf(`{"transactions":[%s]}`, strings.Replace(InvokeV1Fixture, `"version":"0x1"`, `"version":"0x9"`, 1))
	err := json.Unmarshal([]byte(bad), &block)
	assert.True(IsUnknownCombination(err), "%v", err)
}

func TestWrapperProjections(t *testing.T) {
	assert := assert.New(t)

	for _, sel := range Variants() {
		w := Wrap(sel.New())
		assert.Equal(w.Transaction().Type(), w.Type())
		assert.Equal(w.Transaction().Version(), w.Version())
	}
}
