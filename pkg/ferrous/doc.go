// Package ferrous provides two generic sum types for explicit control flow:
// Option[T] for values that may be absent and Result[T, E] for computations
// that may fail with a typed error.
//
// Highlights:
// - Some/None/OfNullable/Of: construct Option[T]
// - Ok/Err/Catching: construct Result[T, E], capturing panics and errors
// - MapOption/FlatMapOption and MapResult/FlatMapResult: transform values
// - OkOr, Result.Ok/Err, TransposeOption/TransposeResult: cross conversions
// - ZipOption/ZipResult: combine two values into a Pair
// - Stream/Get/ToNullable: bridge to iterators, comma-ok and pointers
//
// All values are immutable: every combinator returns a new instance and no
// method mutates state. Extraction methods panic with OptionError or
// ResultError when called on the variant that cannot satisfy them; these
// panics are never recovered by the library itself.
//
// Operations that change the value type are package functions rather than
// methods, since Go methods cannot introduce type parameters. For synchronous
// fluent pipelines over Result[T, error], see package chain.
package ferrous
