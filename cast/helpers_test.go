package cast

import (
	"math"
	"testing"
)

var (
	maxI128 = I128FromRaw(1<<63-1, math.MaxUint64)
	minI128 = I128FromRaw(1<<63, 0)
	maxU128 = U128FromRaw(math.MaxUint64, math.MaxUint64)
	negOne  = I128FromRaw(math.MaxUint64, math.MaxUint64)
)

// expect fails the test when a fallible conversion result differs from the
// wanted one. The value is only compared when the conversion succeeded.
func expect[T comparable](t *testing.T, got T, ok bool, want T, wantOK bool) {
	t.Helper()

	if ok != wantOK || (ok && got != want) {
		t.Fatalf("got (%v, %v), want (%v, %v)", got, ok, want, wantOK)
	}
}

// expectNone fails the test when a fallible conversion succeeded or returned
// a non-zero value.
func expectNone[T comparable](t *testing.T, got T, ok bool) {
	t.Helper()

	var zero T
	if ok || got != zero {
		t.Fatalf("got (%v, %v), want (%v, false)", got, ok, zero)
	}
}

// ledger implements only the two required ToPrimitive methods.
type ledger struct{ v int64 }

func (l ledger) ToInt64() (int64, bool)   { return l.v, true }
func (l ledger) ToUint64() (uint64, bool) { return Convert[uint64](l.v) }

// counter implements only the two required ToPrimitive methods, over the
// uint64 range.
type counter struct{ v uint64 }

func (c counter) ToInt64() (int64, bool)   { return Convert[int64](c.v) }
func (c counter) ToUint64() (uint64, bool) { return c.v, true }

// register holds a 128-bit value and overrides the 128-bit accessors.
type register struct{ v I128 }

func (r register) ToInt64() (int64, bool)   { return Convert[int64](r.v) }
func (r register) ToUint64() (uint64, bool) { return Convert[uint64](r.v) }
func (r register) ToInt128() (I128, bool)   { return r.v, true }
func (r register) ToUint128() (U128, bool)  { return Convert[U128](r.v) }
