package cast

// FromPrimitive is implemented by numeric types that can be constructed from
// the primitive types. Each method reports whether the argument is
// representable in T.
//
// The methods are called on the zero value of T and must not depend on the
// receiver. FromInt64 and FromUint64 are the only required methods; the
// constructor functions ([FromInt8], [FromFloat64], ...) derive every other
// width from them. As with [ToPrimitive], a type may implement any of the
// width-specific methods (for example FromInt128(I128) (T, bool)) to replace
// the default.
type FromPrimitive[T any] interface {
	FromInt64(n int64) (T, bool)
	FromUint64(n uint64) (T, bool)
}

type (
	fromInt[T any]     interface{ FromInt(n int) (T, bool) }
	fromInt8[T any]    interface{ FromInt8(n int8) (T, bool) }
	fromInt16[T any]   interface{ FromInt16(n int16) (T, bool) }
	fromInt32[T any]   interface{ FromInt32(n int32) (T, bool) }
	fromInt128[T any]  interface{ FromInt128(n I128) (T, bool) }
	fromUint[T any]    interface{ FromUint(n uint) (T, bool) }
	fromUint8[T any]   interface{ FromUint8(n uint8) (T, bool) }
	fromUint16[T any]  interface{ FromUint16(n uint16) (T, bool) }
	fromUint32[T any]  interface{ FromUint32(n uint32) (T, bool) }
	fromUint128[T any] interface{ FromUint128(n U128) (T, bool) }
	fromUintptr[T any] interface{ FromUintptr(n uintptr) (T, bool) }
	fromFloat32[T any] interface{ FromFloat32(n float32) (T, bool) }
	fromFloat64[T any] interface{ FromFloat64(n float64) (T, bool) }
)

// FromInt constructs a T from an int.
func FromInt[T FromPrimitive[T]](n int) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromInt[T]); ok {
		return o.FromInt(n)
	}

	return zero.FromInt64(int64(n))
}

// FromInt8 constructs a T from an int8.
func FromInt8[T FromPrimitive[T]](n int8) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromInt8[T]); ok {
		return o.FromInt8(n)
	}

	return zero.FromInt64(int64(n))
}

// FromInt16 constructs a T from an int16.
func FromInt16[T FromPrimitive[T]](n int16) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromInt16[T]); ok {
		return o.FromInt16(n)
	}

	return zero.FromInt64(int64(n))
}

// FromInt32 constructs a T from an int32.
func FromInt32[T FromPrimitive[T]](n int32) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromInt32[T]); ok {
		return o.FromInt32(n)
	}

	return zero.FromInt64(int64(n))
}

// FromInt64 constructs a T from an int64.
func FromInt64[T FromPrimitive[T]](n int64) (T, bool) {
	var zero T
	return zero.FromInt64(n)
}

// FromInt128 constructs a T from an [I128]. The default only accepts values
// in the range of int64.
func FromInt128[T FromPrimitive[T]](n I128) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromInt128[T]); ok {
		return o.FromInt128(n)
	}

	i, ok := Convert[int64](n)
	if !ok {
		return zero, false
	}

	return zero.FromInt64(i)
}

// FromUint constructs a T from a uint.
func FromUint[T FromPrimitive[T]](n uint) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromUint[T]); ok {
		return o.FromUint(n)
	}

	return zero.FromUint64(uint64(n))
}

// FromUint8 constructs a T from a uint8.
func FromUint8[T FromPrimitive[T]](n uint8) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromUint8[T]); ok {
		return o.FromUint8(n)
	}

	return zero.FromUint64(uint64(n))
}

// FromUint16 constructs a T from a uint16.
func FromUint16[T FromPrimitive[T]](n uint16) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromUint16[T]); ok {
		return o.FromUint16(n)
	}

	return zero.FromUint64(uint64(n))
}

// FromUint32 constructs a T from a uint32.
func FromUint32[T FromPrimitive[T]](n uint32) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromUint32[T]); ok {
		return o.FromUint32(n)
	}

	return zero.FromUint64(uint64(n))
}

// FromUint64 constructs a T from a uint64.
func FromUint64[T FromPrimitive[T]](n uint64) (T, bool) {
	var zero T
	return zero.FromUint64(n)
}

// FromUint128 constructs a T from a [U128]. The default only accepts values
// in the range of uint64.
func FromUint128[T FromPrimitive[T]](n U128) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromUint128[T]); ok {
		return o.FromUint128(n)
	}

	u, ok := Convert[uint64](n)
	if !ok {
		return zero, false
	}

	return zero.FromUint64(u)
}

// FromUintptr constructs a T from a uintptr.
func FromUintptr[T FromPrimitive[T]](n uintptr) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromUintptr[T]); ok {
		return o.FromUintptr(n)
	}

	return zero.FromUint64(uint64(n))
}

// FromFloat32 constructs a T from a float32 by widening it and calling
// [FromFloat64].
func FromFloat32[T FromPrimitive[T]](n float32) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromFloat32[T]); ok {
		return o.FromFloat32(n)
	}

	return FromFloat64[T](float64(n))
}

// FromFloat64 constructs a T from a float64. The fraction is truncated; the
// default tries FromInt64 first and falls back to FromUint64, so positive
// values past the range of int64 still reach T.
func FromFloat64[T FromPrimitive[T]](n float64) (T, bool) {
	var zero T
	if o, ok := any(zero).(fromFloat64[T]); ok {
		return o.FromFloat64(n)
	}

	if i, ok := Convert[int64](n); ok {
		return zero.FromInt64(i)
	}

	if u, ok := Convert[uint64](n); ok {
		return zero.FromUint64(u)
	}

	return zero, false
}
