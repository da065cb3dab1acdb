// Copyright 2024 The Cockroach Authors.
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

// Package bigdec implements arbitrary-precision non-negative integers stored
// as base-10 digits, along with factorial, exponentiation and Fibonacci
// numbers computed on top of them.
package bigdec

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/cockroachdb/bigdec/int10"
)

// BigDecimal is an arbitrary-precision non-negative integer. Its digits are
// stored least significant first and never carry a redundant leading zero.
//
// The zero value is ready to use and represents 0.
type BigDecimal struct {
	digits int10.Int
}

// New returns a new BigDecimal with value x.
func New(x uint64) *BigDecimal {
	return &BigDecimal{digits: int10.NewInt(x)}
}

// NewFromString returns a new BigDecimal with the value of s, which must
// consist only of the characters 0-9. Leading zeros are dropped: "007" is 7.
func NewFromString(s string) (*BigDecimal, error) {
	return new(BigDecimal).SetString(s)
}

// SetUint64 sets d to x and returns d.
func (d *BigDecimal) SetUint64(x uint64) *BigDecimal {
	d.digits = int10.NewInt(x)
	return d
}

// SetString sets d to the value of s and returns d. If s is empty or contains
// anything other than 0-9, d is unchanged and the error's cause is
// ErrInvalidInput.
func (d *BigDecimal) SetString(s string) (*BigDecimal, error) {
	i, ok := int10.NewIntString(s)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidInput, "parse %q", s)
	}
	d.digits = i
	return d, nil
}

// Set sets d to a copy of x and returns d.
func (d *BigDecimal) Set(x *BigDecimal) *BigDecimal {
	if d != x {
		d.digits.Set(x.digits)
	}
	return d
}

// SetBig sets d to x and returns d. The error's cause is ErrInvalidInput if
// x is negative.
func (d *BigDecimal) SetBig(x *big.Int) (*BigDecimal, error) {
	i, ok := int10.NewIntBig(x)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidInput, "negative value %s", x)
	}
	d.digits = i
	return d, nil
}

// Big returns d as a *big.Int.
func (d *BigDecimal) Big() *big.Int {
	b, _ := new(big.Int).SetString(d.String(), 10)
	return b
}

// Uint64 returns d as a uint64. The error's cause is ErrOverflow if d is
// larger than math.MaxUint64.
func (d *BigDecimal) Uint64() (uint64, error) {
	x, ok := d.coeff().Uint64()
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%s does not fit in a uint64", d)
	}
	return x, nil
}

// String returns the decimal digits of d, most significant first.
func (d *BigDecimal) String() string {
	return d.coeff().String()
}

// NumDigits returns the number of decimal digits of d. 0 has one digit.
func (d *BigDecimal) NumDigits() int {
	return len(d.coeff())
}

// IsZero reports whether d is 0.
func (d *BigDecimal) IsZero() bool {
	return d.coeff().Zero()
}

// Cmp compares d and x and returns -1, 0 or +1 as d is less than, equal to or
// greater than x.
func (d *BigDecimal) Cmp(x *BigDecimal) int {
	return d.coeff().Cmp(x.coeff())
}

// Equal reports whether d == x.
func (d *BigDecimal) Equal(x *BigDecimal) bool {
	return d.Cmp(x) == 0
}

// coeff returns the digits of d, substituting [0] for the zero value. The
// result must not be modified.
func (d *BigDecimal) coeff() int10.Int {
	if len(d.digits) == 0 {
		return int10.Int{0}
	}
	return d.digits
}
