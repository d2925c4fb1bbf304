// Package cast converts between Go's numeric types.
//
// Two families of conversion are provided, and they are never mixed:
//
//   - The fallible family ([Convert], [Cast], [ToPrimitive] with its
//     accessors, [FromPrimitive] with its constructors, and [NumCast]) returns
//     a value only when it is numerically equal to the source, allowing only
//     the fraction of a float to be dropped. Otherwise it reports false.
//     Nothing is clamped or wrapped.
//   - The infallible family ([As]) follows native cast semantics: integers
//     wrap, floats saturate at the integer bounds, NaN becomes zero.
//
// Both families cover every built-in integer and float type plus the 128-bit
// [I128] and [U128] from [num]. User types join the fallible family by
// implementing ToInt64 and ToUint64 (or FromInt64 and FromUint64); every
// other width is derived from those two. [Wrapping] shows the pattern for a
// wrapper that delegates everything.
//
// [To] is the dynamic entry point: it accepts any value, including numeric
// strings, and reports failures as errors. Integer narrowing goes through
// [safemath]; other coercions use [cast].
package cast
