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
	"fmt"
	"math/big"
	"testing"
)

func TestFactorial(t *testing.T) {
	tests := map[uint64]string{
		0:  "1",
		1:  "1",
		5:  "120",
		10: "3628800",
		20: "2432902008176640000",
		25: "15511210043330985984000000",
	}
	for n, expect := range tests {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			if s := Factorial(n).String(); s != expect {
				t.Fatalf("got %s, expected %s", s, expect)
			}
		})
	}
	for n := int64(0); n < 120; n++ {
		var b big.Int
		b.MulRange(1, n)
		if s := Factorial(uint64(n)).String(); s != b.String() {
			t.Fatalf("%d!: got %s, want %s", n, s, &b)
		}
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		base     string
		exponent uint64
		expect   string
	}{
		{"2", 10, "1024"},
		{"2", 0, "1"},
		{"0", 0, "1"},
		{"12345678901234567890", 0, "1"},
		{"0", 5, "0"},
		{"1", 1000, "1"},
		{"10", 3, "1000"},
		{"2", 100, "1267650600228229401496703205376"},
		{"3", 41, "36472996377170786403"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s**%d", tc.base, tc.exponent), func(t *testing.T) {
			base := newDecimal(t, tc.base)
			if s := Power(base, tc.exponent).String(); s != tc.expect {
				t.Fatalf("got %s, expected %s", s, tc.expect)
			}
			if base.String() != tc.base {
				t.Fatalf("base changed to %s", base)
			}
		})
	}
	for e := uint64(0); e < 70; e++ {
		var b big.Int
		b.Exp(big.NewInt(7), new(big.Int).SetUint64(e), nil)
		if s := PowerUint64(7, e).String(); s != b.String() {
			t.Fatalf("7**%d: got %s, want %s", e, s, &b)
		}
	}
}

func TestPowerDifference(t *testing.T) {
	tests := []struct {
		a, b   uint64
		expect string
	}{
		{5, 3, "24"},
		{3, 3, "0"},
		{10, 0, "1023"},
		{100, 99, "633825300114114700748351602688"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d, %d", tc.a, tc.b), func(t *testing.T) {
			d, err := Sub(PowerUint64(2, tc.a), PowerUint64(2, tc.b))
			if err != nil {
				t.Fatal(err)
			}
			if s := d.String(); s != tc.expect {
				t.Fatalf("got %s, expected %s", s, tc.expect)
			}
		})
	}
	if _, err := Sub(PowerUint64(2, 3), PowerUint64(2, 5)); err == nil {
		t.Fatal("expected underflow")
	}
}

func TestFibonacci(t *testing.T) {
	tests := map[uint64]string{
		0:   "0",
		1:   "1",
		2:   "1",
		3:   "2",
		10:  "55",
		11:  "89",
		100: "354224848179261915075",
	}
	for n, expect := range tests {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			if s := Fibonacci(n).String(); s != expect {
				t.Fatalf("got %s, expected %s", s, expect)
			}
		})
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for n := uint64(0); n < 300; n++ {
		if s := Fibonacci(n).String(); s != a.String() {
			t.Fatalf("F(%d): got %s, want %s", n, s, a)
		}
		a.Add(a, b)
		a, b = b, a
	}
}
