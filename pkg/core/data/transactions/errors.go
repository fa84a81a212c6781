// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package transactions

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedPayload is returned when the input is not a JSON object.
	ErrMalformedPayload = errors.New("transaction payload is not a JSON object")
	// ErrEmptyWrapper is returned when encoding a Wrapper that holds no transaction.
	ErrEmptyWrapper = errors.New("wrapper holds no transaction")
)

// MalformedScalarError reports a field whose value is not a valid hex scalar.
type MalformedScalarError struct {
	Field string
	Value string
}

func (e *MalformedScalarError) Error() string {
	return fmt.Sprintf("malformed scalar in field %s: %s", e.Field, e.Value)
}

// MissingFieldError reports a required field absent from the payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Field)
}

// TypeMismatchError reports a payload declaring a different transaction than
// the one being decoded.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// UnknownCombinationError reports a (type, version) pair outside the catalogue.
type UnknownCombinationError struct {
	Type    string
	Version string
}

func (e *UnknownCombinationError) Error() string {
	return fmt.Sprintf("unknown transaction type %q with version %q", e.Type, e.Version)
}

// IsMalformedScalar returns true if err is, or wraps, a MalformedScalarError.
func IsMalformedScalar(err error) bool {
	var target *MalformedScalarError
	return errors.As(err, &target)
}

// IsMissingField returns true if err is, or wraps, a MissingFieldError.
func IsMissingField(err error) bool {
	var target *MissingFieldError
	return errors.As(err, &target)
}

// IsTypeMismatch returns true if err is, or wraps, a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	var target *TypeMismatchError
	return errors.As(err, &target)
}

// IsUnknownCombination returns true if err is, or wraps, an UnknownCombinationError.
func IsUnknownCombination(err error) bool {
	var target *UnknownCombinationError
	return errors.As(err, &target)
}
