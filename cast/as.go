package cast

import "math"

// As converts s to D with the semantics of a native cast. It never fails and
// never panics.
//
//   - Integer to integer keeps the low-order bits of the two's-complement
//     pattern: narrowing wraps, signed sources sign-extend and unsigned sources
//     zero-extend.
//   - Float to integer truncates toward zero and saturates at D's bounds.
//     NaN becomes 0.
//   - Integer and bool to float round to the nearest float, ties to even.
//   - Float to float widens exactly or rounds to nearest, overflowing to
//     infinity.
//   - false becomes 0 and true becomes 1.
func As[D Primitive, S Source](s S) D {
	switch x := any(s).(type) {
	case bool:
		if x {
			return asUint64[D](1)
		}
		return asUint64[D](0)
	case int:
		return asInt64[D](int64(x))
	case int8:
		return asInt64[D](int64(x))
	case int16:
		return asInt64[D](int64(x))
	case int32:
		return asInt64[D](int64(x))
	case int64:
		return asInt64[D](x)
	case uint:
		return asUint64[D](uint64(x))
	case uint8:
		return asUint64[D](uint64(x))
	case uint16:
		return asUint64[D](uint64(x))
	case uint32:
		return asUint64[D](uint64(x))
	case uint64:
		return asUint64[D](x)
	case uintptr:
		return asUint64[D](uint64(x))
	case I128:
		hi, lo := x.Raw()
		return asRaw128[D](hi, lo, true)
	case U128:
		hi, lo := x.Raw()
		return asRaw128[D](hi, lo, false)
	case float32:
		return asFloat64[D](float64(x))
	case float64:
		return asFloat64[D](x)
	}

	var zero D
	return zero
}

func asInt64[D Primitive](x int64) D {
	var d D

	switch p := any(&d).(type) {
	case *I128:
		*p = I128FromRaw(uint64(x>>63), uint64(x))
	case *U128:
		*p = U128FromRaw(uint64(x>>63), uint64(x))
	case *float32:
		*p = float32(x)
	case *float64:
		*p = float64(x)
	default:
		return asUint64[D](uint64(x))
	}

	return d
}

func asUint64[D Primitive](x uint64) D {
	var d D

	switch p := any(&d).(type) {
	case *int:
		*p = int(x)
	case *int8:
		*p = int8(x)
	case *int16:
		*p = int16(x)
	case *int32:
		*p = int32(x)
	case *int64:
		*p = int64(x)
	case *uint:
		*p = uint(x)
	case *uint8:
		*p = uint8(x)
	case *uint16:
		*p = uint16(x)
	case *uint32:
		*p = uint32(x)
	case *uint64:
		*p = x
	case *uintptr:
		*p = uintptr(x)
	case *I128:
		*p = I128FromRaw(0, x)
	case *U128:
		*p = U128FromRaw(0, x)
	case *float32:
		*p = float32(x)
	case *float64:
		*p = float64(x)
	}

	return d
}

func asRaw128[D Primitive](hi, lo uint64, signed bool) D {
	var d D

	switch p := any(&d).(type) {
	case *I128:
		*p = I128FromRaw(hi, lo)
	case *U128:
		*p = U128FromRaw(hi, lo)
	case *float32:
		*p = float32FromRaw(hi, lo, signed)
	case *float64:
		*p = float64FromRaw(hi, lo, signed)
	default:
		return asUint64[D](lo)
	}

	return d
}

func asFloat64[D Primitive](f float64) D {
	var d D

	switch p := any(&d).(type) {
	case *float32:
		*p = narrowFloat(f)
		return d
	case *float64:
		*p = f
		return d
	}

	dom := domainOf[D]()
	lo, hi := dom.truncBounds()
	t := math.Trunc(f)

	switch {
	case math.IsNaN(f):
		return d
	case t < lo:
		rhi, rlo := dom.minRaw()
		return asRaw128[D](rhi, rlo, true)
	case t >= hi:
		rhi, rlo := dom.maxRaw()
		return asRaw128[D](rhi, rlo, dom.kind == signedKind)
	case dom.bits > 64:
		rhi, rlo := rawFromFloat(t)
		return asRaw128[D](rhi, rlo, dom.kind == signedKind)
	case dom.kind == signedKind:
		return asInt64[D](int64(t))
	default:
		return asUint64[D](uint64(t))
	}
}
