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

import "fmt"

// MustNewFromString is like NewFromString but panics if s is not a valid
// digit string.
func MustNewFromString(s string) *BigDecimal {
	d, err := NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromString(%q) failed: %v", s, err))
	}
	return d
}

// MustSub is like Sub but panics if x < y.
func MustSub(x, y *BigDecimal) *BigDecimal {
	z, err := Sub(x, y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", x, y, err))
	}
	return z
}
