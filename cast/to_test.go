package cast

import (
	"math"
	"testing"
)

func TestToDefaultsFromInt64(t *testing.T) {
	t.Run("inRange", func(t *testing.T) {
		v := ledger{v: -100}

		i8, ok := ToInt8(v)
		expect(t, i8, ok, -100, true)

		i32, ok := ToInt32(v)
		expect(t, i32, ok, -100, true)

		i128, ok := ToInt128(v)
		expect(t, i128, ok, I128FromRaw(math.MaxUint64, 1<<64-100), true)

		f32, ok := ToFloat32(v)
		expect(t, f32, ok, -100, true)

		f64, ok := ToFloat64(v)
		expect(t, f64, ok, -100, true)
	})

	t.Run("negativeToUnsigned", func(t *testing.T) {
		v := ledger{v: -1}

		u8, ok := ToUint8(v)
		expectNone(t, u8, ok)

		u, ok := ToUint(v)
		expectNone(t, u, ok)

		u128, ok := ToUint128(v)
		expectNone(t, u128, ok)

		ptr, ok := ToUintptr(v)
		expectNone(t, ptr, ok)
	})

	t.Run("narrowing", func(t *testing.T) {
		v := ledger{v: 128}

		i8, ok := ToInt8(v)
		expectNone(t, i8, ok)

		u8, ok := ToUint8(v)
		expect(t, u8, ok, 128, true)

		i16, ok := ToInt16(v)
		expect(t, i16, ok, 128, true)
	})
}

func TestToDefaultsFromUint64(t *testing.T) {
	v := counter{v: math.MaxUint64}

	i64, ok := ToInt64(v)
	expectNone(t, i64, ok)

	i128, ok := ToInt128(v)
	expectNone(t, i128, ok)

	u64, ok := ToUint64(v)
	expect(t, u64, ok, math.MaxUint64, true)

	u128, ok := ToUint128(v)
	expect(t, u128, ok, U128FromRaw(0, math.MaxUint64), true)

	f64, ok := ToFloat64(v)
	expect(t, f64, ok, math.Ldexp(1, 64), true)

	f32, ok := ToFloat32(v)
	expect(t, f32, ok, float32(math.Ldexp(1, 64)), true)

	u32, ok := ToUint32(counter{v: 1 << 32})
	expectNone(t, u32, ok)

	u32, ok = ToUint32(counter{v: 1<<32 - 1})
	expect(t, u32, ok, math.MaxUint32, true)
}

func TestToWideOverrides(t *testing.T) {
	t.Run("beyondInt64", func(t *testing.T) {
		v := register{v: maxI128}

		i128, ok := ToInt128(v)
		expect(t, i128, ok, maxI128, true)

		u128, ok := ToUint128(v)
		expect(t, u128, ok, U128FromRaw(1<<63-1, math.MaxUint64), true)

		i64, ok := ToInt64(v)
		expectNone(t, i64, ok)

		// The float default only sees ToInt64 and ToUint64.
		f64, ok := ToFloat64(v)
		expectNone(t, f64, ok)
	})

	t.Run("negative", func(t *testing.T) {
		v := register{v: minI128}

		i128, ok := ToInt128(v)
		expect(t, i128, ok, minI128, true)

		u128, ok := ToUint128(v)
		expectNone(t, u128, ok)
	})

	t.Run("valueCoversEverything", func(t *testing.T) {
		v := Of(maxI128)

		f64, ok := ToFloat64(v)
		expect(t, f64, ok, math.Ldexp(1, 127), true)

		f32, ok := ToFloat32(v)
		expect(t, f32, ok, float32(math.Ldexp(1, 127)), true)
	})
}

// clamp reports every conversion as out of range except ToInt8, which it
// overrides.
type clamp struct{}

func (clamp) ToInt64() (int64, bool)   { return 0, false }
func (clamp) ToUint64() (uint64, bool) { return 0, false }
func (clamp) ToInt8() (int8, bool)     { return 7, true }

func TestToOverridePrecedence(t *testing.T) {
	i8, ok := ToInt8(clamp{})
	expect(t, i8, ok, 7, true)

	i16, ok := ToInt16(clamp{})
	expectNone(t, i16, ok)

	f64, ok := ToFloat64(clamp{})
	expectNone(t, f64, ok)

	f32, ok := ToFloat32(clamp{})
	expectNone(t, f32, ok)
}

func TestValueMatchesConvert(t *testing.T) {
	ints := []int64{math.MinInt64, math.MinInt32 - 1, -129, -1, 0, 127, 255, 65536, math.MaxInt64}
	for _, n := range ints {
		v := Of(n)

		got8, ok8 := ToInt8(v)
		want8, wok8 := Convert[int8](n)
		if got8 != want8 || ok8 != wok8 {
			t.Fatalf("ToInt8(%d) = (%d, %v), want (%d, %v)", n, got8, ok8, want8, wok8)
		}

		gotU, okU := ToUint16(v)
		wantU, wokU := Convert[uint16](n)
		if gotU != wantU || okU != wokU {
			t.Fatalf("ToUint16(%d) = (%d, %v), want (%d, %v)", n, gotU, okU, wantU, wokU)
		}

		// The defaults over ledger agree with the direct conversion.
		gotL, okL := ToInt32(ledger{v: n})
		wantL, wokL := Convert[int32](n)
		if gotL != wantL || okL != wokL {
			t.Fatalf("ToInt32(ledger{%d}) = (%d, %v), want (%d, %v)", n, gotL, okL, wantL, wokL)
		}
	}

	floats := []float64{math.Inf(-1), -1e19, -2.5, -0.5, 0, 0.99, 4294967295.5, 1.8e19, math.NaN()}
	for _, f := range floats {
		v := Of(f)

		got, ok := ToUint32(v)
		want, wok := Convert[uint32](f)
		if got != want || ok != wok {
			t.Fatalf("ToUint32(%v) = (%d, %v), want (%d, %v)", f, got, ok, want, wok)
		}

		got64, ok64 := ToUint64(v)
		want64, wok64 := Convert[uint64](f)
		if got64 != want64 || ok64 != wok64 {
			t.Fatalf("ToUint64(%v) = (%d, %v), want (%d, %v)", f, got64, ok64, want64, wok64)
		}
	}
}

func TestToFloatFromNonIntegralValue(t *testing.T) {
	v := Of(2.75)

	f64, ok := ToFloat64(v)
	expect(t, f64, ok, 2.75, true)

	i, ok := ToInt(v)
	expect(t, i, ok, 2, true)

	u8, ok := ToUint8(Of(-0.75))
	expect(t, u8, ok, 0, true)
}

func TestToNilSource(t *testing.T) {
	var v ToPrimitive

	i8, ok := ToInt8(v)
	expectNone(t, i8, ok)

	i64, ok := ToInt64(v)
	expectNone(t, i64, ok)

	u64, ok := ToUint64(v)
	expectNone(t, u64, ok)

	u128, ok := ToUint128(v)
	expectNone(t, u128, ok)

	f32, ok := ToFloat32(v)
	expectNone(t, f32, ok)

	f64, ok := ToFloat64(v)
	expectNone(t, f64, ok)
}
