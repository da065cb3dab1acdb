// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bigdec

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is the cause of errors from parsing anything other than
	// a non-empty string of the digits 0-9, or from negative inputs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnderflow is the cause of errors from subtracting a larger value
	// from a smaller one.
	ErrUnderflow = errors.New("underflow")
	// ErrOverflow is the cause of errors from converting a value that does
	// not fit in the requested machine integer.
	ErrOverflow = errors.New("overflow")
)

// ErrDecimal performs operations on BigDecimals and collects errors during
// operations. If an error is already set, the operation is skipped. Designed to
// be used for many operations in a row, with a single error check at the end.
type ErrDecimal struct {
	Err error
}

// Add performs d.Add(x, y).
func (e *ErrDecimal) Add(d, x, y *BigDecimal) {
	if e.Err != nil {
		return
	}
	d.Add(x, y)
}

// Mul performs d.Mul(x, y).
func (e *ErrDecimal) Mul(d, x, y *BigDecimal) {
	if e.Err != nil {
		return
	}
	d.Mul(x, y)
}

// Sub performs d.Sub(x, y).
func (e *ErrDecimal) Sub(d, x, y *BigDecimal) {
	if e.Err != nil {
		return
	}
	e.Err = d.Sub(x, y)
}

// SetString performs d.SetString(s).
func (e *ErrDecimal) SetString(d *BigDecimal, s string) {
	if e.Err != nil {
		return
	}
	_, e.Err = d.SetString(s)
}

// Cmp returns 0 if Err is set. Otherwise returns a.Cmp(b).
func (e *ErrDecimal) Cmp(a, b *BigDecimal) int {
	if e.Err != nil {
		return 0
	}
	return a.Cmp(b)
}

// Uint64 returns 0 if Err is set. Otherwise returns d.Uint64().
func (e *ErrDecimal) Uint64(d *BigDecimal) uint64 {
	if e.Err != nil {
		return 0
	}
	var r uint64
	r, e.Err = d.Uint64()
	return r
}
