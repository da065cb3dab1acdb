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

// Factorial returns n!. Factorial(0) is 1.
func Factorial(n uint64) *BigDecimal {
	result := New(1)
	var f BigDecimal
	for ; n > 0; n-- {
		result.Mul(result, f.SetUint64(n))
	}
	return result
}

// Power returns base**exponent by repeated squaring. Power(x, 0) is 1 for
// every x, including 0. base is not modified.
func Power(base *BigDecimal, exponent uint64) *BigDecimal {
	result := New(1)
	p := new(BigDecimal).Set(base)
	for exponent > 0 {
		if exponent&1 == 1 {
			result.Mul(result, p)
		}
		exponent >>= 1
		if exponent > 0 {
			p.Mul(p, p)
		}
	}
	return result
}

// PowerUint64 returns base**exponent.
func PowerUint64(base, exponent uint64) *BigDecimal {
	return Power(New(base), exponent)
}

// Fibonacci returns the nth Fibonacci number, where Fibonacci(0) is 0 and
// Fibonacci(1) is 1.
func Fibonacci(n uint64) *BigDecimal {
	// pair holds two consecutive Fibonacci numbers; each step advances both
	// by two positions.
	pair := [2]*BigDecimal{New(0), New(1)}
	for ; n > 1; n -= 2 {
		pair[0].Add(pair[0], pair[1])
		pair[1].Add(pair[1], pair[0])
	}
	return pair[n]
}
