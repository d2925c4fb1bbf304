package cast

import (
	"math"
	"strconv"
)

type kind uint8

const (
	signedKind kind = iota + 1
	unsignedKind
	floatKind
)

// ptrSize is the width of uintptr in bits.
const ptrSize = 32 << (^uintptr(0) >> 63)

// domain describes the value range of a primitive type.
type domain struct {
	kind kind
	bits uint
}

func domainOf[T Primitive]() domain {
	var zero T

	switch any(zero).(type) {
	case int8:
		return domain{signedKind, 8}
	case int16:
		return domain{signedKind, 16}
	case int32:
		return domain{signedKind, 32}
	case int64:
		return domain{signedKind, 64}
	case int:
		return domain{signedKind, strconv.IntSize}
	case I128:
		return domain{signedKind, 128}
	case uint8:
		return domain{unsignedKind, 8}
	case uint16:
		return domain{unsignedKind, 16}
	case uint32:
		return domain{unsignedKind, 32}
	case uint64:
		return domain{unsignedKind, 64}
	case uint:
		return domain{unsignedKind, strconv.IntSize}
	case uintptr:
		return domain{unsignedKind, ptrSize}
	case U128:
		return domain{unsignedKind, 128}
	case float32:
		return domain{floatKind, 32}
	default:
		return domain{floatKind, 64}
	}
}

// truncBounds returns the half-open interval [lo, hi) that a float must fall
// into, once truncated toward zero, to be representable in the integer domain
// d. Both ends are powers of two, so they are exact in float64 for every width
// up to 128 bits.
//
// This is the same interval as the open (MIN-1, MAX+1) bound on the
// untruncated value, without having to represent MIN-1 or MAX+1.
func (d domain) truncBounds() (lo, hi float64) {
	if d.kind == signedKind {
		return -math.Ldexp(1, int(d.bits)-1), math.Ldexp(1, int(d.bits)-1)
	}

	return 0, math.Ldexp(1, int(d.bits))
}

// admits reports whether the float f, truncated toward zero, lies within the
// integer domain d. NaN and infinities are never admitted.
func (d domain) admits(f float64) bool {
	lo, hi := d.truncBounds()
	t := math.Trunc(f)

	return t >= lo && t < hi
}

// maxRaw returns the largest value of the integer domain d as a 128-bit
// two's-complement pattern.
func (d domain) maxRaw() (hi, lo uint64) {
	n := d.bits
	if d.kind == signedKind {
		n--
	}

	if n >= 64 {
		return uint64(1)<<(n-64) - 1, math.MaxUint64
	}

	return 0, uint64(1)<<n - 1
}

// minRaw returns the smallest value of the integer domain d as a 128-bit
// two's-complement pattern.
func (d domain) minRaw() (hi, lo uint64) {
	if d.kind != signedKind {
		return 0, 0
	}

	n := d.bits - 1
	if n >= 64 {
		return negate128(uint64(1)<<(n-64), 0)
	}

	return negate128(0, uint64(1)<<n)
}
