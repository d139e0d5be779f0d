package num

import (
	"math"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-helpers/random"
)

// Integer is the set of types accepted by IsEven and IsOdd.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ─────────────────────────────────────────────────────────────────────────────
// Bounding & rounding
// ─────────────────────────────────────────────────────────────────────────────

// Clamp restricts n to [low, high]. Reversed bounds are swapped first.
func Clamp(n, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	return lo.Clamp(n, low, high)
}

// Round rounds n to decimals fractional digits, halves away from zero.
// A negative decimals rounds to tens, hundreds and so on.
//
//	Round(3.14159, 2)  // 3.14
//	Round(-2.5, 0)     // -3
//	Round(1234.5, -2)  // 1200
func Round(n float64, decimals int) float64 {
	if decimals < 0 {
		p := math.Pow10(-decimals)
		if math.IsInf(p, 0) {
			return math.Copysign(0, n)
		}
		return math.Round(n/p) * p
	}
	factor := math.Pow10(decimals)
	if math.IsInf(factor, 0) || math.IsInf(n*factor, 0) {
		return n
	}
	return math.Round(n*factor) / factor
}

// ─────────────────────────────────────────────────────────────────────────────
// Random values
// ─────────────────────────────────────────────────────────────────────────────

// RandomInt returns a uniformly random integer in [low, high], both
// inclusive. Reversed bounds are swapped. high-low+1 must fit in an int.
func RandomInt(low, high int) int {
	return RandomIntWith(random.Default(), low, high)
}

// RandomIntWith is [RandomInt] with an explicit source.
func RandomIntWith(src random.Source, low, high int) int {
	if low > high {
		low, high = high, low
	}
	return low + src.IntN(high-low+1)
}

// RandomFloat returns a uniformly random float in [low, high).
// Reversed bounds are swapped; equal bounds return low.
func RandomFloat(low, high float64) float64 {
	return RandomFloatWith(random.Default(), low, high)
}

// RandomFloatWith is [RandomFloat] with an explicit source.
func RandomFloatWith(src random.Source, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	return low + src.Float64()*(high-low)
}

// ─────────────────────────────────────────────────────────────────────────────
// Parity
// ─────────────────────────────────────────────────────────────────────────────

// IsEven reports whether n is divisible by two.
func IsEven[T Integer](n T) bool { return n%2 == 0 }

// IsOdd reports whether n is not divisible by two.
func IsOdd[T Integer](n T) bool { return n%2 != 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of numbers; 0 for an empty slice.
func Sum(numbers []float64) float64 {
	return lo.Sum(numbers)
}

// Average returns the arithmetic mean of numbers; 0 for an empty slice.
func Average(numbers []float64) float64 {
	return lo.Mean(numbers)
}

// Min returns the smallest value. It returns false for an empty slice and NaN
// if any value is NaN.
func Min(numbers []float64) (float64, bool) {
	return fold(numbers, math.Min)
}

// Max returns the largest value. It returns false for an empty slice and NaN
// if any value is NaN.
func Max(numbers []float64) (float64, bool) {
	return fold(numbers, math.Max)
}

func fold(numbers []float64, pick func(a, b float64) float64) (float64, bool) {
	if len(numbers) == 0 {
		return 0, false
	}
	acc := numbers[0]
	for _, n := range numbers[1:] {
		acc = pick(acc, n)
	}
	return acc, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 { return degrees * (math.Pi / 180) }

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 { return radians * (180 / math.Pi) }

// Percentage returns value/total*100, or 0 when total is zero.
func Percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
