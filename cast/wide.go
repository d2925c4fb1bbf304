package cast

import (
	"math"
	"math/big"
)

// float32Overflow is the smallest float64 magnitude that rounds to infinity as
// a float32. It lies halfway between math.MaxFloat32 and 1<<128, and ties go
// to the even neighbour, which is 1<<128.
var float32Overflow = math.Ldexp(1<<25-1, 103)

// narrowFloat rounds f to the nearest float32, overflowing to infinity.
func narrowFloat(f float64) float32 {
	switch {
	case f >= float32Overflow:
		return float32(math.Inf(1))
	case f <= -float32Overflow:
		return float32(math.Inf(-1))
	}

	return float32(f)
}

func negate128(hi, lo uint64) (uint64, uint64) {
	lo = ^lo + 1
	hi = ^hi
	if lo == 0 {
		hi++
	}

	return hi, lo
}

// bigFromRaw returns the value of a 128-bit pattern, read as two's complement
// when signed is set.
func bigFromRaw(hi, lo uint64, signed bool) *big.Int {
	if signed {
		return I128FromRaw(hi, lo).AsBigInt()
	}

	return U128FromRaw(hi, lo).AsBigInt()
}

// float64FromRaw rounds a 128-bit integer to the nearest float64, ties to
// even.
func float64FromRaw(hi, lo uint64, signed bool) float64 {
	f, _ := new(big.Float).SetInt(bigFromRaw(hi, lo, signed)).Float64()

	return f
}

// float32FromRaw rounds a 128-bit integer to the nearest float32, ties to
// even. Magnitudes past math.MaxFloat32 become infinite.
func float32FromRaw(hi, lo uint64, signed bool) float32 {
	f, _ := new(big.Float).SetInt(bigFromRaw(hi, lo, signed)).Float32()

	return f
}

// rawFromFloat returns the 128-bit two's-complement pattern of t, which must
// be integral with a magnitude below 1<<128 (or exactly -(1<<127)).
func rawFromFloat(t float64) (hi, lo uint64) {
	neg := t < 0
	if neg {
		t = -t
	}

	// Scaling by a power of two is exact, and so is the remainder: it keeps
	// at most the 53 significant bits of t.
	h := math.Floor(math.Ldexp(t, -64))
	hi = uint64(h)
	lo = uint64(t - math.Ldexp(h, 64))
	if neg {
		hi, lo = negate128(hi, lo)
	}

	return hi, lo
}
