package cast

import "fmt"

// Wrapping is a transparent wrapper for values whose arithmetic is meant to
// wrap on overflow. It takes part in the fallible conversions by delegating
// to the wrapped value, and adds no semantics of its own.
//
// Wrapping has no [As] conversion; unwrap it with Get first.
type Wrapping[T Primitive] struct {
	V T
}

// Wrap returns v as a [Wrapping].
func Wrap[T Primitive](v T) Wrapping[T] {
	return Wrapping[T]{V: v}
}

// Get returns the wrapped value.
func (w Wrapping[T]) Get() T { return w.V }

// String implements [fmt.Stringer].
func (w Wrapping[T]) String() string { return fmt.Sprint(w.V) }

// CastFrom implements [NumCast].
func (Wrapping[T]) CastFrom(v ToPrimitive) (Wrapping[T], bool) {
	x, ok := Cast[T](v)
	return Wrapping[T]{V: x}, ok
}

// ToPrimitive methods. Each converts the wrapped value with [Convert] and
// reports whether it is representable in the target type.

func (w Wrapping[T]) ToInt() (int, bool) { return Convert[int](w.V) }
func (w Wrapping[T]) ToInt8() (int8, bool) { return Convert[int8](w.V) }
func (w Wrapping[T]) ToInt16() (int16, bool) { return Convert[int16](w.V) }
func (w Wrapping[T]) ToInt32() (int32, bool) { return Convert[int32](w.V) }
func (w Wrapping[T]) ToInt64() (int64, bool) { return Convert[int64](w.V) }
func (w Wrapping[T]) ToInt128() (I128, bool) { return Convert[I128](w.V) }
func (w Wrapping[T]) ToUint() (uint, bool) { return Convert[uint](w.V) }
func (w Wrapping[T]) ToUint8() (uint8, bool) { return Convert[uint8](w.V) }
func (w Wrapping[T]) ToUint16() (uint16, bool) { return Convert[uint16](w.V) }
func (w Wrapping[T]) ToUint32() (uint32, bool) { return Convert[uint32](w.V) }
func (w Wrapping[T]) ToUint64() (uint64, bool) { return Convert[uint64](w.V) }
func (w Wrapping[T]) ToUint128() (U128, bool) { return Convert[U128](w.V) }
func (w Wrapping[T]) ToUintptr() (uintptr, bool) { return Convert[uintptr](w.V) }
func (w Wrapping[T]) ToFloat32() (float32, bool) { return Convert[float32](w.V) }
func (w Wrapping[T]) ToFloat64() (float64, bool) { return Convert[float64](w.V) }

// FromPrimitive methods. Each converts n to T with [Convert] and wraps the
// result. They ignore the receiver.

func (Wrapping[T]) FromInt(n int) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromInt8(n int8) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromInt16(n int16) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromInt32(n int32) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromInt64(n int64) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromInt128(n I128) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromUint(n uint) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromUint8(n uint8) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromUint16(n uint16) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromUint32(n uint32) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromUint64(n uint64) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromUint128(n U128) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromUintptr(n uintptr) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromFloat32(n float32) (Wrapping[T], bool) { return rewrap[T](n) }
func (Wrapping[T]) FromFloat64(n float64) (Wrapping[T], bool) { return rewrap[T](n) }

// rewrap converts n to T and wraps the result.
func rewrap[T, S Primitive](n S) (Wrapping[T], bool) {
	v, ok := Convert[T](n)
	return Wrapping[T]{V: v}, ok
}
