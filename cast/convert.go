package cast

import "go.dw1.io/safemath"

// Convert converts s to the primitive type D, reporting whether s is
// representable in D. On failure it returns the zero value and false.
//
// Integer results are exact: integer sources must lie within D's range, and a
// float source is truncated toward zero before the same check. NaN and
// infinities never fit an integer type. Every value converts to a float type,
// rounding to nearest; narrowing to float32 overflows to infinity.
func Convert[D, S Primitive](s S) (D, bool) {
	switch x := any(s).(type) {
	case int:
		return convInt64[D](int64(x), x)
	case int8:
		return convInt64[D](int64(x), x)
	case int16:
		return convInt64[D](int64(x), x)
	case int32:
		return convInt64[D](int64(x), x)
	case int64:
		return convInt64[D](x, x)
	case uint:
		return convUint64[D](uint64(x), x)
	case uint8:
		return convUint64[D](uint64(x), x)
	case uint16:
		return convUint64[D](uint64(x), x)
	case uint32:
		return convUint64[D](uint64(x), x)
	case uint64:
		return convUint64[D](x, x)
	case uintptr:
		return convUint64[D](uint64(x), x)
	case I128:
		hi, lo := x.Raw()
		return convRaw128[D](hi, lo, true)
	case U128:
		hi, lo := x.Raw()
		return convRaw128[D](hi, lo, false)
	case float32:
		return convFloat64[D](float64(x))
	case float64:
		return convFloat64[D](x)
	}

	var zero D
	return zero, false
}

// convInt64 converts x, whose original value is src, to D.
func convInt64[D Primitive](x int64, src any) (D, bool) {
	var d D

	switch p := any(&d).(type) {
	case *I128, *float32, *float64:
		return As[D](x), true
	case *U128:
		if x < 0 {
			return d, false
		}
		*p = As[U128](x)
		return d, true
	}

	return narrowInt[D](src)
}

// convUint64 converts x, whose original value is src, to D.
func convUint64[D Primitive](x uint64, src any) (D, bool) {
	switch any(*new(D)).(type) {
	case I128, U128, float32, float64:
		return As[D](x), true
	}

	return narrowInt[D](src)
}

func convRaw128[D Primitive](hi, lo uint64, signed bool) (D, bool) {
	neg := signed && int64(hi) < 0

	switch {
	case signed && hi == uint64(int64(lo)>>63):
		return convInt64[D](int64(lo), int64(lo))
	case !neg && hi == 0:
		return convUint64[D](lo, lo)
	}

	// Beyond 64 bits only the other 128-bit type and the floats remain.
	var d D

	switch any(d).(type) {
	case I128:
		if !signed && int64(hi) < 0 {
			return d, false
		}
	case U128:
		if neg {
			return d, false
		}
	case float32, float64:
	default:
		return d, false
	}

	return asRaw128[D](hi, lo, signed), true
}

func convFloat64[D Primitive](f float64) (D, bool) {
	dom := domainOf[D]()
	if dom.kind != floatKind && !dom.admits(f) {
		var zero D
		return zero, false
	}

	return As[D](f), true
}

// narrowInt converts v to D, an integer type of at most 64 bits, using
// safemath to reject values that do not fit.
func narrowInt[D Primitive](v any) (D, bool) {
	switch any(*new(D)).(type) {
	case int:
		return narrowIntOf[D, int](v)
	case int8:
		return narrowIntOf[D, int8](v)
	case int16:
		return narrowIntOf[D, int16](v)
	case int32:
		return narrowIntOf[D, int32](v)
	case int64:
		return narrowIntOf[D, int64](v)
	case uint:
		return narrowIntOf[D, uint](v)
	case uint8:
		return narrowIntOf[D, uint8](v)
	case uint16:
		return narrowIntOf[D, uint16](v)
	case uint32:
		return narrowIntOf[D, uint32](v)
	case uint64:
		return narrowIntOf[D, uint64](v)
	case uintptr:
		return narrowIntOf[D, uintptr](v)
	}

	var zero D
	return zero, false
}

// narrowIntOf converts v to I with safemath and re-types the result as D (which
// is the caller's type parameter).
func narrowIntOf[D any, I safemath.Integer](v any) (D, bool) {
	converted, err := safemath.ConvertAny[I](v)
	if err != nil {
		var zero D
		return zero, false
	}

	return any(converted).(D), true
}
