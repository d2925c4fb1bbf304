package cast

// ToPrimitive is implemented by numeric values that can be converted to the
// primitive types. Each method reports whether the value is representable in
// the target type. The accessor functions report false for a nil v.
//
// ToInt64 and ToUint64 are the only required methods. The accessor functions
// ([ToInt8], [ToFloat32], ...) derive every other width from them. A type may
// also implement any of the width-specific methods, with the same name and
// signature as the accessor function minus the argument (for example
// ToInt128() (I128, bool)); the accessor then calls it instead of the
// default. Types whose range exceeds 64 bits should implement ToInt128 and
// ToUint128, since the defaults never exceed the range of int64 and uint64.
type ToPrimitive interface {
	ToInt64() (int64, bool)
	ToUint64() (uint64, bool)
}

type (
	toInt     interface{ ToInt() (int, bool) }
	toInt8    interface{ ToInt8() (int8, bool) }
	toInt16   interface{ ToInt16() (int16, bool) }
	toInt32   interface{ ToInt32() (int32, bool) }
	toInt128  interface{ ToInt128() (I128, bool) }
	toUint    interface{ ToUint() (uint, bool) }
	toUint8   interface{ ToUint8() (uint8, bool) }
	toUint16  interface{ ToUint16() (uint16, bool) }
	toUint32  interface{ ToUint32() (uint32, bool) }
	toUint128 interface{ ToUint128() (U128, bool) }
	toUintptr interface{ ToUintptr() (uintptr, bool) }
	toFloat32 interface{ ToFloat32() (float32, bool) }
	toFloat64 interface{ ToFloat64() (float64, bool) }
)

// ToInt converts v to an int.
func ToInt(v ToPrimitive) (int, bool) {
	if o, ok := v.(toInt); ok {
		return o.ToInt()
	}

	return viaInt64[int](v)
}

// ToInt8 converts v to an int8.
func ToInt8(v ToPrimitive) (int8, bool) {
	if o, ok := v.(toInt8); ok {
		return o.ToInt8()
	}

	return viaInt64[int8](v)
}

// ToInt16 converts v to an int16.
func ToInt16(v ToPrimitive) (int16, bool) {
	if o, ok := v.(toInt16); ok {
		return o.ToInt16()
	}

	return viaInt64[int16](v)
}

// ToInt32 converts v to an int32.
func ToInt32(v ToPrimitive) (int32, bool) {
	if o, ok := v.(toInt32); ok {
		return o.ToInt32()
	}

	return viaInt64[int32](v)
}

// ToInt64 converts v to an int64.
func ToInt64(v ToPrimitive) (int64, bool) {
	if v == nil {
		return 0, false
	}

	return v.ToInt64()
}

// ToInt128 converts v to an [I128]. Without a ToInt128 method on v the
// result is limited to the range of int64.
func ToInt128(v ToPrimitive) (I128, bool) {
	if o, ok := v.(toInt128); ok {
		return o.ToInt128()
	}

	return viaInt64[I128](v)
}

// ToUint converts v to a uint.
func ToUint(v ToPrimitive) (uint, bool) {
	if o, ok := v.(toUint); ok {
		return o.ToUint()
	}

	return viaUint64[uint](v)
}

// ToUint8 converts v to a uint8.
func ToUint8(v ToPrimitive) (uint8, bool) {
	if o, ok := v.(toUint8); ok {
		return o.ToUint8()
	}

	return viaUint64[uint8](v)
}

// ToUint16 converts v to a uint16.
func ToUint16(v ToPrimitive) (uint16, bool) {
	if o, ok := v.(toUint16); ok {
		return o.ToUint16()
	}

	return viaUint64[uint16](v)
}

// ToUint32 converts v to a uint32.
func ToUint32(v ToPrimitive) (uint32, bool) {
	if o, ok := v.(toUint32); ok {
		return o.ToUint32()
	}

	return viaUint64[uint32](v)
}

// ToUint64 converts v to a uint64.
func ToUint64(v ToPrimitive) (uint64, bool) {
	if v == nil {
		return 0, false
	}

	return v.ToUint64()
}

// ToUint128 converts v to a [U128]. Without a ToUint128 method on v the
// result is limited to the range of uint64.
func ToUint128(v ToPrimitive) (U128, bool) {
	if o, ok := v.(toUint128); ok {
		return o.ToUint128()
	}

	return viaUint64[U128](v)
}

// ToUintptr converts v to a uintptr.
func ToUintptr(v ToPrimitive) (uintptr, bool) {
	if o, ok := v.(toUintptr); ok {
		return o.ToUintptr()
	}

	return viaUint64[uintptr](v)
}

// ToFloat32 converts v to a float32. The default goes through [ToFloat64]
// and may overflow to infinity.
func ToFloat32(v ToPrimitive) (float32, bool) {
	if o, ok := v.(toFloat32); ok {
		return o.ToFloat32()
	}

	f, ok := ToFloat64(v)
	if !ok {
		return 0, false
	}

	return Convert[float32](f)
}

// ToFloat64 converts v to a float64. The default tries ToInt64 first and
// falls back to ToUint64, so it covers both halves of the float range that
// the two wide accessors can reach.
func ToFloat64(v ToPrimitive) (float64, bool) {
	if o, ok := v.(toFloat64); ok {
		return o.ToFloat64()
	}

	if i, ok := ToInt64(v); ok {
		return Convert[float64](i)
	}

	return viaUint64[float64](v)
}

func viaInt64[D Primitive](v ToPrimitive) (D, bool) {
	i, ok := ToInt64(v)
	if !ok {
		var zero D
		return zero, false
	}

	return Convert[D](i)
}

func viaUint64[D Primitive](v ToPrimitive) (D, bool) {
	u, ok := ToUint64(v)
	if !ok {
		var zero D
		return zero, false
	}

	return Convert[D](u)
}
