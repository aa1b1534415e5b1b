package calibrate

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// pow10 holds every power of ten representable in a uint64.
var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Pow10 returns 10^n. It panics if the result does not fit in a uint64.
func Pow10(n int) uint64 {
	return pow10[n]
}

// DigitCount returns the number of decimal digits in v. Zero has one digit.
func DigitCount[T constraints.Unsigned](v T) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Concatenate returns the number whose decimal digits are those of a followed by
// those of b. ok is false if the result overflows.
func Concatenate(a, b uint64) (v uint64, ok bool) {
	d := DigitCount(b)
	if d >= len(pow10) {
		// 10^20 does not fit, so only a leading zero survives.
		return b, a == 0
	}
	hi, lo := bits.Mul64(a, Pow10(d))
	if hi != 0 {
		return 0, false
	}
	v, carry := bits.Add64(lo, b, 0)
	return v, carry == 0
}

// checkedAdd returns a+b, reporting false on overflow.
func checkedAdd(a, b uint64) (uint64, bool) {
	v, carry := bits.Add64(a, b, 0)
	return v, carry == 0
}

// checkedMul returns a*b, reporting false on overflow.
func checkedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
