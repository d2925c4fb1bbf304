package cast

// NumCast is implemented by numeric types that can be constructed from any
// [ToPrimitive] value. CastFrom is called on the zero value of T and must not
// depend on the receiver.
type NumCast[T any] interface {
	ToPrimitive
	CastFrom(v ToPrimitive) (T, bool)
}

// Cast converts v to type U, reporting whether v is representable in U.
//
// For a primitive U, Cast calls the matching accessor, so Cast[uint32](v) is
// ToUint32(v). For a U that implements [NumCast], it calls CastFrom. Any other
// U, or a nil v, yields the zero value and false.
func Cast[U any](v ToPrimitive) (U, bool) {
	var zero U
	if v == nil {
		return zero, false
	}

	switch any(zero).(type) {
	case int:
		return via[U](v, ToInt)
	case int8:
		return via[U](v, ToInt8)
	case int16:
		return via[U](v, ToInt16)
	case int32:
		return via[U](v, ToInt32)
	case int64:
		return via[U](v, ToInt64)
	case I128:
		return via[U](v, ToInt128)
	case uint:
		return via[U](v, ToUint)
	case uint8:
		return via[U](v, ToUint8)
	case uint16:
		return via[U](v, ToUint16)
	case uint32:
		return via[U](v, ToUint32)
	case uint64:
		return via[U](v, ToUint64)
	case U128:
		return via[U](v, ToUint128)
	case uintptr:
		return via[U](v, ToUintptr)
	case float32:
		return via[U](v, ToFloat32)
	case float64:
		return via[U](v, ToFloat64)
	}

	if c, ok := any(zero).(NumCast[U]); ok {
		return c.CastFrom(v)
	}

	return zero, false
}

// CastOf converts the primitive value s to type U. It is shorthand for
// Cast[U](Of(s)).
func CastOf[U any, S Primitive](s S) (U, bool) {
	return Cast[U](Of(s))
}

// via calls the accessor fn on v and re-types the result as U (which is the
// caller's type parameter).
func via[U, T any](v ToPrimitive, fn func(ToPrimitive) (T, bool)) (U, bool) {
	converted, ok := fn(v)
	if !ok {
		var zero U
		return zero, false
	}

	return any(converted).(U), true
}
