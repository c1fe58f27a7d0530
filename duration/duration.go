// Package duration holds the exact rational time arithmetic everything else
// is built on. Durations are measured in whole bars: 1 is one bar, 1/4 a
// quarter of it. All helpers return fresh values and never mutate arguments,
// so durations can be shared freely.
package duration

import (
	"fmt"
	"math/big"
)

type Dur = *big.Rat

func New(num, den int64) Dur {
	return big.NewRat(num, den)
}

func Zero() Dur {
	return big.NewRat(0, 1)
}

func One() Dur {
	return big.NewRat(1, 1)
}

func FromInt(n int64) Dur {
	return big.NewRat(n, 1)
}

// Parse reads "3/4" or "2" style literals.
func Parse(s string) (Dur, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("bad duration %q", s)
	}
	return r, nil
}

// Set returns an independent copy of d.
func Set(d Dur) Dur {
	return new(big.Rat).Set(d)
}

func Add(a, b Dur) Dur {
	return new(big.Rat).Add(a, b)
}

func Sub(a, b Dur) Dur {
	return new(big.Rat).Sub(a, b)
}

func Mul(a, b Dur) Dur {
	return new(big.Rat).Mul(a, b)
}

func Div(a, b Dur) Dur {
	return new(big.Rat).Quo(a, b)
}

func Sum(ds []Dur) Dur {
	total := Zero()
	for _, d := range ds {
		total.Add(total, d)
	}
	return total
}

func Eq(a, b Dur) bool {
	return a.Cmp(b) == 0
}

// IsPowerOfTwo reports whether d is 2^k for some integer k (negative k
// included). Implemented by exact doubling/halving into [1,2) rather than a
// floating-point log, which would misclassify near misses like 4503599627370497/2^52.
func IsPowerOfTwo(d Dur) bool {
	if d.Sign() <= 0 {
		return false
	}
	one := big.NewRat(1, 1)
	two := big.NewRat(2, 1)
	x := new(big.Rat).Set(d)
	for x.Cmp(one) < 0 {
		x.Mul(x, two)
	}
	for x.Cmp(two) >= 0 {
		x.Quo(x, two)
	}
	return x.Cmp(one) == 0
}
