package cast

import "github.com/shabbyrobe/go-num"

// I128 is an alias for [num.I128].
type I128 = num.I128

// U128 is an alias for [num.U128].
type U128 = num.U128

// Signed is a constraint that matches the built-in signed integer types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is a constraint that matches the built-in unsigned integer types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Integer is a constraint that matches the built-in integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that matches the built-in IEEE-754 float types.
type Float interface {
	float32 | float64
}

// Wide is a constraint that matches the 128-bit integer types.
type Wide interface {
	I128 | U128
}

// Primitive is a constraint that matches every type this package converts
// from and to.
//
// Only the exact types are matched. Named types such as time.Duration must be
// converted to their underlying type first, or passed through [To].
type Primitive interface {
	Integer | Float | Wide
}

// Source is a constraint that matches the types accepted by [As].
//
// A rune is an int32 and converts as one. Every Unicode scalar value is
// non-negative and below 1<<21, so this agrees with scalar-value semantics.
type Source interface {
	Primitive | bool
}

// I128FromRaw is an alias for [num.I128FromRaw].
func I128FromRaw(hi, lo uint64) I128 {
	return num.I128FromRaw(hi, lo)
}

// U128FromRaw is an alias for [num.U128FromRaw].
func U128FromRaw(hi, lo uint64) U128 {
	return num.U128FromRaw(hi, lo)
}
