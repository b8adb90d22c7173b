package ferrous

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
)

// Result represents either success (Ok carrying a value) or failure (Err
// carrying a typed error payload). Both payloads are required non-nil at
// construction.
//
// As with Option, every instance carries an id and creation time stamped at
// construction; they are tracing metadata and take no part in equality.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
}

// Ok creates a successful Result. It panics with a ResultError if value is
// nil.
func Ok[T, E any](value T) Result[T, E] {
	if IsNil(value) {
		panic(NewResultError(msgNilOk))
	}
	return Result[T, E]{
		value:     value,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err creates a failed Result. It panics with a ResultError if err is nil.
func Err[T, E any](err E) Result[T, E] {
	if IsNil(err) {
		panic(NewResultError(msgNilErr))
	}
	return Result[T, E]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Unwrap returns the success value or panics with a ResultError if Err.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(NewResultError(msgUnwrapErr))
	}
	return r.value
}

// UnwrapErr returns the error payload or panics with a ResultError if Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic(NewResultError(msgUnwrapErrOk))
	}
	return r.err
}

// UnwrapOr returns the success value or the given fallback.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success value or the supplier result. The
// supplier runs only if the Result is Err.
func (r Result[T, E]) UnwrapOrElse(supplier func() T) T {
	if r.isOk {
		return r.value
	}
	return supplier()
}

// Expect is Unwrap with a caller-supplied diagnostic message.
func (r Result[T, E]) Expect(message string) T {
	if !r.isOk {
		panic(NewResultError(message))
	}
	return r.value
}

// ExpectErr is UnwrapErr with a caller-supplied diagnostic message.
func (r Result[T, E]) ExpectErr(message string) E {
	if r.isOk {
		panic(NewResultError(message))
	}
	return r.err
}

// Or returns this Result if Ok, otherwise other. See OrElse for the lazy
// form.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return other
}

// OrElse returns this Result if Ok, otherwise the supplier result. The
// supplier runs only if the Result is Err.
func (r Result[T, E]) OrElse(supplier func() Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return supplier()
}

// Ok converts to an Option over the success value, discarding the error.
func (r Result[T, E]) Ok() Option[T] {
	if r.isOk {
		return Some(r.value)
	}
	return None[T]()
}

// Err converts to an Option over the error payload, discarding the value.
func (r Result[T, E]) Err() Option[E] {
	if r.isOk {
		return None[E]()
	}
	return Some(r.err)
}

// Contains reports whether this is Ok holding a value deeply equal to v.
func (r Result[T, E]) Contains(v T) bool {
	return r.isOk && equalValues(r.value, v)
}

// ContainsErr reports whether this is Err holding an error deeply equal to e.
func (r Result[T, E]) ContainsErr(e E) bool {
	return !r.isOk && equalValues(r.err, e)
}

// Inspect calls consumer with the success value if Ok and returns the
// Result unchanged.
func (r Result[T, E]) Inspect(consumer func(T)) Result[T, E] {
	if r.isOk {
		consumer(r.value)
	}
	return r
}

// InspectErr calls consumer with the error payload if Err and returns the
// Result unchanged.
func (r Result[T, E]) InspectErr(consumer func(E)) Result[T, E] {
	if !r.isOk {
		consumer(r.err)
	}
	return r
}

// IfOk calls consumer with the success value if Ok.
func (r Result[T, E]) IfOk(consumer func(T)) {
	if r.isOk {
		consumer(r.value)
	}
}

// IfErr calls consumer with the error payload if Err.
func (r Result[T, E]) IfErr(consumer func(E)) {
	if !r.isOk {
		consumer(r.err)
	}
}

// IfOkOrElse dispatches to exactly one of the two callbacks.
func (r Result[T, E]) IfOkOrElse(onOk func(T), onErr func(E)) {
	if r.isOk {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// Stream returns a lazy sequence of zero or one element: the success value
// if Ok, nothing if Err.
func (r Result[T, E]) Stream() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.isOk {
			yield(r.value)
		}
	}
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
