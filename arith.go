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

package bigdec

import (
	"github.com/pkg/errors"

	"github.com/cockroachdb/bigdec/int10"
)

// Add sets z to the sum x+y and returns z. z may alias x or y; z.Add(z, y)
// adds y to z in place.
func (z *BigDecimal) Add(x, y *BigDecimal) *BigDecimal {
	if z == y {
		x, y = y, x
	}
	z.Set(x)
	z.digits.AddAssign(y.coeff())
	return z
}

// Sub sets z to the difference x-y. If x < y, z is unchanged and the error's
// cause is ErrUnderflow.
func (z *BigDecimal) Sub(x, y *BigDecimal) error {
	if x.Cmp(y) < 0 {
		return errors.Wrapf(ErrUnderflow, "%s - %s", x, y)
	}
	yd := y.coeff()
	if z == y && z != x {
		yd = append(int10.Int(nil), yd...)
	}
	z.Set(x)
	if z.digits.SubAssign(yd) {
		panic("bigdec: borrow after magnitude check")
	}
	return nil
}

// Mul sets z to the product x*y and returns z. z may alias x or y.
func (z *BigDecimal) Mul(x, y *BigDecimal) *BigDecimal {
	// MulAssign writes into a fresh buffer, so neither operand's digits are
	// touched.
	r := x.coeff()
	r.MulAssign(y.coeff())
	z.digits = r
	return z
}

// Add returns a new BigDecimal set to x+y.
func Add(x, y *BigDecimal) *BigDecimal {
	return new(BigDecimal).Add(x, y)
}

// Sub returns a new BigDecimal set to x-y. The error's cause is ErrUnderflow
// if x < y.
func Sub(x, y *BigDecimal) (*BigDecimal, error) {
	z := new(BigDecimal)
	if err := z.Sub(x, y); err != nil {
		return nil, err
	}
	return z, nil
}

// Mul returns a new BigDecimal set to x*y.
func Mul(x, y *BigDecimal) *BigDecimal {
	return new(BigDecimal).Mul(x, y)
}
