package ferrous

// Type-changing Option operations. Go methods cannot introduce type
// parameters, so these live as package functions, mirroring how the solo
// package pairs with the core Result in railway-style code.

// MapOption applies fn to the value if Some and wraps the result as Some.
// fn must return a non-nil result; a nil result fails fast at the Some
// construction rather than silently degrading to None. None is returned
// untouched without invoking fn.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.IsSome() {
		return Some(fn(o.Unwrap()))
	}
	return None[U]()
}

// FlatMapOption returns fn(value) directly if Some, None otherwise. Use it
// when the transformation itself may not produce a value; it avoids nesting
// Option[Option[U]].
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.IsSome() {
		return fn(o.Unwrap())
	}
	return None[U]()
}

// AndOption returns other if o is Some, None otherwise. The value of o is
// discarded; other is constructed by the caller before the call, so its
// side effects happen regardless of o's variant.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.IsSome() {
		return other
	}
	return None[U]()
}

// AndThenOption is the lazy counterpart of AndOption: fn runs only if o is
// Some. Behaviourally an alias for FlatMapOption.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	return FlatMapOption(o, fn)
}

// ZipOption combines two options into Some(Pair) when both are Some, None
// otherwise.
func ZipOption[T, U any](o Option[T], other Option[U]) Option[Pair[T, U]] {
	if o.IsSome() && other.IsSome() {
		return Some(NewPair(o.Unwrap(), other.Unwrap()))
	}
	return None[Pair[T, U]]()
}

// ZipOptionWith combines two options through fn when both are Some, None
// otherwise.
func ZipOptionWith[T, U, R any](o Option[T], other Option[U], fn func(T, U) R) Option[R] {
	if o.IsSome() && other.IsSome() {
		return Some(fn(o.Unwrap(), other.Unwrap()))
	}
	return None[R]()
}

// OkOr converts an Option to a Result: Ok of the value if Some, Err of the
// given error if None. The error is evaluated eagerly by the caller; see
// OkOrElse for the lazy form.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.IsSome() {
		return Ok[T, E](o.Unwrap())
	}
	return Err[T, E](err)
}

// OkOrElse converts an Option to a Result, computing the error only if the
// Option is None.
func OkOrElse[T, E any](o Option[T], supplier func() E) Result[T, E] {
	if o.IsSome() {
		return Ok[T, E](o.Unwrap())
	}
	return Err[T, E](supplier())
}

// TransposeOption swaps the nesting of an Option of a Result:
//
//	Some(Ok(v))  -> Ok(Some(v))
//	Some(Err(e)) -> Err(e)
//	None         -> Ok(None)
func TransposeOption[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if o.IsNone() {
		return Ok[Option[T], E](None[T]())
	}

	inner := o.Unwrap()
	if inner.IsErr() {
		return Err[Option[T], E](inner.UnwrapErr())
	}
	return Ok[Option[T], E](Some(inner.Unwrap()))
}

// FlattenOption collapses one level of nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if o.IsSome() {
		return o.Unwrap()
	}
	return None[T]()
}

// FoldOption reduces an Option to a single value by applying exactly one of
// the two handlers.
func FoldOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.IsSome() {
		return onSome(o.Unwrap())
	}
	return onNone()
}

// EqualOption reports value equality: same variant and, for Some, deeply
// equal payloads. Construction metadata (id, creation time) is ignored.
func EqualOption[T any](a, b Option[T]) bool {
	if a.IsSome() != b.IsSome() {
		return false
	}
	if a.IsNone() {
		return true
	}
	return equalValues(a.Unwrap(), b.Unwrap())
}
