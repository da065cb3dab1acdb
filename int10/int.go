package int10

import (
	"math"
	"math/big"
	"strings"
)

// Int represents an unsigned, base-10, multi-precision integer. Each index is a single base-10 digit, in reverse order as written. That is, [0] is the 1s digit, [1] 10s, [2] 100s, etc. 0 is represented by [0]; functions in this package also accept an empty slice as 0 but never produce one.
type Int []Word

type Word uint8

const base = 10

// NewInt makes a new Int with value x.
func NewInt(x uint64) Int {
	var arr [20]Word
	i := 0
	for {
		arr[i] = Word(x % base)
		x /= base
		i++
		if x == 0 {
			break
		}
	}
	a := make(Int, i)
	copy(a, arr[:i])
	return a
}

// NewIntBig makes a new Int with value x. The second return value is false if x is negative.
func NewIntBig(x *big.Int) (Int, bool) {
	if x.Sign() < 0 {
		return nil, false
	}
	return NewIntString(x.String())
}

// NewIntString makes a new Int with value s. s must be non-empty and contain only characters 0-9. The second return value is false otherwise. Leading zeros are dropped, so "007" is 7.
func NewIntString(s string) (Int, bool) {
	if s == "" {
		return nil, false
	}
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return Int{0}, true
	}
	x := make(Int, len(t))
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		x[len(x)-i-1] = Word(c - '0')
	}
	return x, true
}

// Set sets z to a copy of x and returns z.
func (z *Int) Set(x Int) *Int {
	if len(x) == 0 {
		*z = append((*z)[:0], 0)
		return z
	}
	*z = append((*z)[:0], x...)
	return z
}

// Uint64 returns a as a uint64. ok is false if a does not fit.
func (a Int) Uint64() (x uint64, ok bool) {
	for i := len(a) - 1; i >= 0; i-- {
		d := uint64(a[i])
		if x > (math.MaxUint64-d)/base {
			return 0, false
		}
		x = x*base + d
	}
	return x, true
}

// Cmp returns -1, 0 or 1 as a is less than, equal to or greater than b. a and b are required to not have any leading 0s.
func (a Int) Cmp(b Int) int {
	if len(a) == 0 {
		a = Int{0}
	}
	if len(b) == 0 {
		b = Int{0}
	}
	if len(a) > len(b) {
		return 1
	}
	if len(b) > len(a) {
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// Zero returns whether z is 0.
func (z Int) Zero() bool {
	for _, d := range z {
		if d != 0 {
			return false
		}
	}
	return true
}

// Equal returns whether a == b. a and b are required to not have any leading 0s.
func (a Int) Equal(b Int) bool {
	return a.Cmp(b) == 0
}

func (z Int) String() string {
	if len(z) == 0 {
		return "0"
	}
	b := make([]byte, len(z))
	for i, v := range z {
		b[len(b)-i-1] = byte(v + '0')
	}
	return string(b)
}

// AddAssign sets z to z+y.
func (z *Int) AddAssign(y Int) {
	x := *z
	if n := len(y); len(x) < n {
		m := len(x)
		if cap(x) <= n {
			t := make(Int, m, n+1)
			copy(t, x)
			x = t
		}
		x = x[:n]
		clear(x[m:])
	}
	var carry Word
	for i := 0; i < len(y) || carry != 0; i++ {
		if i == len(x) {
			x = append(x, carry)
			break
		}
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		x[i] = s % base
		carry = s / base
	}
	*z = x.norm()
}

// SubAssign sets z to z-y. z must be >= y. If it is not, borrow is true and
// the contents of z are unspecified.
func (z *Int) SubAssign(y Int) (borrow bool) {
	x := *z
	if len(x) == 0 {
		x = Int{0}
	}
	var b Word
	for i := 0; i < len(y) || b != 0; i++ {
		if i >= len(x) {
			return true
		}
		s := b
		if i < len(y) {
			s += y[i]
		}
		if x[i] < s {
			x[i] = x[i] + base - s
			b = 1
		} else {
			x[i] -= s
			b = 0
		}
	}
	*z = x.norm()
	return false
}

// MulAssign sets z to z*y by long multiplication. y may alias z.
func (z *Int) MulAssign(y Int) {
	x := *z
	r := make(Int, len(x)+len(y))
	for i, d := range y {
		var carry Word
		for j := 0; j < len(x) || carry != 0; j++ {
			p := r[i+j] + carry
			if j < len(x) {
				p += x[j] * d
			}
			r[i+j] = p % base
			carry = p / base
		}
	}
	*z = r.norm()
}

// norm trims the most significant zero digits of z, keeping at least one.
func (z Int) norm() Int {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return append(z[:0], 0)
	}
	return z[:i]
}
