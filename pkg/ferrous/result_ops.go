package ferrous

// Type-changing Result operations, package functions for the same reason as
// the Option ones: Go methods cannot introduce type parameters.

// MapResult applies fn to the success value and wraps the result as Ok. fn
// must return a non-nil result. Err is propagated untouched without
// invoking fn.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.IsOk() {
		return Ok[U, E](fn(r.Unwrap()))
	}
	return Err[U, E](r.UnwrapErr())
}

// MapErr applies fn to the error payload, leaving success values untouched.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.IsOk() {
		return Ok[T, F](r.Unwrap())
	}
	return Err[T, F](fn(r.UnwrapErr()))
}

// FlatMapResult returns fn(value) directly if Ok, short-circuiting on Err.
func FlatMapResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.IsOk() {
		return fn(r.Unwrap())
	}
	return Err[U, E](r.UnwrapErr())
}

// AndResult returns other if r is Ok, otherwise propagates r's error. Like
// AndOption, other is constructed by the caller before the call.
func AndResult[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.IsOk() {
		return other
	}
	return Err[U, E](r.UnwrapErr())
}

// AndThenResult is the lazy counterpart of AndResult: fn runs only if r is
// Ok. Behaviourally an alias for FlatMapResult.
func AndThenResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	return FlatMapResult(r, fn)
}

// ZipResult combines two results into Ok(Pair) when both are Ok. On any
// failure the first Err reachable from r's side wins: r's error if r is
// Err, other's error if only other is Err.
func ZipResult[T, U, E any](r Result[T, E], other Result[U, E]) Result[Pair[T, U], E] {
	if r.IsErr() {
		return Err[Pair[T, U], E](r.UnwrapErr())
	}
	if other.IsErr() {
		return Err[Pair[T, U], E](other.UnwrapErr())
	}
	return Ok[Pair[T, U], E](NewPair(r.Unwrap(), other.Unwrap()))
}

// ZipResultWith combines two results through fn, with the same
// short-circuit rule as ZipResult.
func ZipResultWith[T, U, R, E any](r Result[T, E], other Result[U, E], fn func(T, U) R) Result[R, E] {
	if r.IsErr() {
		return Err[R, E](r.UnwrapErr())
	}
	if other.IsErr() {
		return Err[R, E](other.UnwrapErr())
	}
	return Ok[R, E](fn(r.Unwrap(), other.Unwrap()))
}

// TransposeResult swaps the nesting of a Result of an Option:
//
//	Ok(Some(v)) -> Some(Ok(v))
//	Ok(None)    -> None
//	Err(e)      -> Some(Err(e))
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	if r.IsErr() {
		return Some(Err[T, E](r.UnwrapErr()))
	}

	inner := r.Unwrap()
	if inner.IsNone() {
		return None[Result[T, E]]()
	}
	return Some(Ok[T, E](inner.Unwrap()))
}

// FlattenResult collapses one level of nesting.
func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.IsOk() {
		return r.Unwrap()
	}
	return Err[T, E](r.UnwrapErr())
}

// FoldResult reduces a Result to a single value by applying exactly one of
// the two handlers.
func FoldResult[T, U, E any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.IsOk() {
		return onOk(r.Unwrap())
	}
	return onErr(r.UnwrapErr())
}

// EqualResult reports value equality: same variant and deeply equal
// payloads. Construction metadata is ignored.
func EqualResult[T, E any](a, b Result[T, E]) bool {
	if a.IsOk() != b.IsOk() {
		return false
	}
	if a.IsOk() {
		return equalValues(a.Unwrap(), b.Unwrap())
	}
	return equalValues(a.UnwrapErr(), b.UnwrapErr())
}
