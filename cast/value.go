package cast

import "fmt"

// Value adapts a primitive value to [ToPrimitive]. Every width-specific
// method is implemented with [Convert], so no precision is lost to the
// default chain.
type Value[T Primitive] struct {
	v T
}

// Of returns v as a [Value].
func Of[T Primitive](v T) Value[T] {
	return Value[T]{v: v}
}

// Get returns the wrapped value.
func (x Value[T]) Get() T { return x.v }

// String implements [fmt.Stringer].
func (x Value[T]) String() string { return fmt.Sprint(x.v) }

// ToPrimitive methods. Each converts the wrapped value with [Convert] and
// reports whether it is representable in the target type.

func (x Value[T]) ToInt() (int, bool) { return Convert[int](x.v) }
func (x Value[T]) ToInt8() (int8, bool) { return Convert[int8](x.v) }
func (x Value[T]) ToInt16() (int16, bool) { return Convert[int16](x.v) }
func (x Value[T]) ToInt32() (int32, bool) { return Convert[int32](x.v) }
func (x Value[T]) ToInt64() (int64, bool) { return Convert[int64](x.v) }
func (x Value[T]) ToInt128() (I128, bool) { return Convert[I128](x.v) }
func (x Value[T]) ToUint() (uint, bool) { return Convert[uint](x.v) }
func (x Value[T]) ToUint8() (uint8, bool) { return Convert[uint8](x.v) }
func (x Value[T]) ToUint16() (uint16, bool) { return Convert[uint16](x.v) }
func (x Value[T]) ToUint32() (uint32, bool) { return Convert[uint32](x.v) }
func (x Value[T]) ToUint64() (uint64, bool) { return Convert[uint64](x.v) }
func (x Value[T]) ToUint128() (U128, bool) { return Convert[U128](x.v) }
func (x Value[T]) ToUintptr() (uintptr, bool) { return Convert[uintptr](x.v) }
func (x Value[T]) ToFloat32() (float32, bool) { return Convert[float32](x.v) }
func (x Value[T]) ToFloat64() (float64, bool) { return Convert[float64](x.v) }
