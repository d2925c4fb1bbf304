package cast

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

var (
	// ErrNotRepresentable is returned by [To] when the value is out of range
	// of the target type. It is the sentinel safemath reports for integer
	// truncation, so errors.Is matches either name.
	ErrNotRepresentable = safemath.ErrTruncation

	// ErrUnsupported is returned by [To] when the value cannot be read as a
	// number.
	ErrUnsupported = errors.New("not a number")
)

// To converts v to type T.
//
// Go numeric values, [I128], [U128] and [ToPrimitive] implementations convert
// with the semantics of [Cast]. A bool converts to 0 or 1. Strings holding an
// integer literal (decimal, or prefixed with 0x, 0o or 0b, with optional
// underscores) are read exactly, whatever their width; other strings are
// parsed as float64 and truncated toward zero when T is an integer.
// Remaining values such as json.Number, []byte or named numeric types are
// coerced to a string by [cast.ToStringE] and then read the same way.
func To[T Primitive](v any) (T, error) {
	var zero T

	src, err := sourceOf(v)
	if err != nil {
		return zero, fmt.Errorf("cannot convert %T to %T: %w", v, zero, err)
	}

	converted, ok := Cast[T](src)
	if !ok {
		return zero, fmt.Errorf("cannot convert %v (%T) to %T: %w", src, v, zero, ErrNotRepresentable)
	}

	return converted, nil
}

// ToMust converts v to type T and panics on error.
func ToMust[T Primitive](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// sourceOf interprets v as a [ToPrimitive].
func sourceOf(v any) (ToPrimitive, error) {
	switch t := v.(type) {
	case nil:
		return nil, ErrUnsupported
	case int:
		return Of(t), nil
	case int8:
		return Of(t), nil
	case int16:
		return Of(t), nil
	case int32:
		return Of(t), nil
	case int64:
		return Of(t), nil
	case uint:
		return Of(t), nil
	case uint8:
		return Of(t), nil
	case uint16:
		return Of(t), nil
	case uint32:
		return Of(t), nil
	case uint64:
		return Of(t), nil
	case uintptr:
		return Of(t), nil
	case float32:
		return Of(t), nil
	case float64:
		return Of(t), nil
	case I128:
		return Of(t), nil
	case U128:
		return Of(t), nil
	case bool:
		return Of(As[uint8](t)), nil
	case time.Duration:
		return Of(int64(t)), nil
	case ToPrimitive:
		return t, nil
	case string:
		return parseNumber(t)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	return parseNumber(s)
}
