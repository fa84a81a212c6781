// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package felt implements the scalar value carried by every Starknet
// transaction field: an unsigned integer of arbitrary precision whose
// wire form is a "0x"-prefixed hex string.
package felt

import (
	"math/big"

	"github.com/pkg/errors"
)

const hexPrefix = "0x"

// ErrMalformedScalar is returned when a text is not of the form 0x[0-9a-fA-F]*.
var ErrMalformedScalar = errors.New("malformed scalar")

// Felt is an immutable unsigned integer. The zero value denotes 0.
//
// The underlying big.Int is never exposed nor mutated after construction,
// so a Felt can be copied and shared between goroutines freely.
type Felt struct {
	n *big.Int
}

// Zero is the felt with value 0.
var Zero = Felt{}

// FromUint64 builds a felt from a machine integer.
func FromUint64(v uint64) Felt {
	return Felt{n: new(big.Int).SetUint64(v)}
}

// FromBigInt builds a felt from a non-negative big integer. The argument
// is copied.
func FromBigInt(v *big.Int) (Felt, error) {
	if v == nil {
		return Zero, nil
	}

	if v.Sign() < 0 {
		return Zero, errors.Wrapf(ErrMalformedScalar, "negative value %s", v.String())
	}

	return Felt{n: new(big.Int).Set(v)}, nil
}

// FromHex decodes the wire form of a felt. Leading zeros and upper case
// digits are accepted, as is the bare prefix "0x" which denotes zero.
func FromHex(text string) (Felt, error) {
	if len(text) < len(hexPrefix) || text[:len(hexPrefix)] != hexPrefix {
		return Zero, errors.Wrapf(ErrMalformedScalar, "%q has no 0x prefix", text)
	}

	digits := text[len(hexPrefix):]
	if len(digits) == 0 {
		return Zero, nil
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Zero, errors.Wrapf(ErrMalformedScalar, "%q is not hexadecimal", text)
		}
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return Zero, errors.Wrapf(ErrMalformedScalar, "%q is not hexadecimal", text)
	}

	return Felt{n: n}, nil
}

// MustFromHex is like FromHex but panics on malformed input. Meant for
// constants and test fixtures.
func MustFromHex(text string) Felt {
	f, err := FromHex(text)
	if err != nil {
		panic(err)
	}
	return f
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

// String returns the canonical wire form: lower case, no leading zeros.
func (f Felt) String() string {
	if f.n == nil {
		return "0x0"
	}
	return hexPrefix + f.n.Text(16)
}

// BigInt returns a copy of the value.
func (f Felt) BigInt() *big.Int {
	if f.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(f.n)
}

// Uint64 returns the value as a machine integer, if it fits.
func (f Felt) Uint64() (uint64, bool) {
	if f.n == nil {
		return 0, true
	}
	if !f.n.IsUint64() {
		return 0, false
	}
	return f.n.Uint64(), true
}

// IsZero reports whether the value is 0.
func (f Felt) IsZero() bool {
	return f.n == nil || f.n.Sign() == 0
}

// Equal compares two felts by value.
func (f Felt) Equal(other Felt) bool {
	return f.Cmp(other) == 0
}

// Cmp compares two felts and returns -1, 0 or +1.
func (f Felt) Cmp(other Felt) int {
	switch {
	case f.n == nil && other.n == nil:
		return 0
	case f.n == nil:
		return -other.n.Sign()
	case other.n == nil:
		return f.n.Sign()
	default:
		return f.n.Cmp(other.n)
	}
}

// MarshalText encodes the felt in its canonical form, which makes it a
// JSON string.
func (f Felt) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes a felt from its wire form.
func (f *Felt) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}

	*f = v
	return nil
}
