package ferrous

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
)

// Option represents an optional value: either Some carrying a non-nil value
// or None carrying nothing. The zero value behaves as None.
//
// Every instance is stamped with an id and creation time at construction.
// These are tracing metadata only; equality of options is value equality
// over variant and payload (see EqualOption) and ignores the stamps.
type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	isSome    bool
}

// Some wraps a known non-nil value. It panics with an OptionError if value
// is nil: the non-absent payload contract is enforced at construction, not
// deferred to first use.
func Some[T any](value T) Option[T] {
	if IsNil(value) {
		panic(NewOptionError(msgNilSome))
	}
	return Option[T]{
		value:     value,
		isSome:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{
		isSome:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OfNullable wraps a possibly nil pointer: Some of the pointed-to value if
// ptr is non-nil, None otherwise. Inverse of ToNullable.
func OfNullable[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk converts Go's comma-ok convention into an Option, e.g. from a map
// lookup or type assertion.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok || IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

// Of runs a computation that may return an error or panic, converting any
// captured fault or nil result into None. Faults are swallowed, never
// rethrown.
func Of[T any](fn func() (T, error)) Option[T] {
	v, err := tryCall(fn)
	if err != nil || IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// OfApply is Of for one-argument computations: it applies fn to input and
// captures any fault or nil result into None.
func OfApply[In, T any](fn func(In) (T, error), input In) Option[T] {
	return Of(func() (T, error) {
		return fn(input)
	})
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Unwrap returns the contained value or panics with an OptionError if None.
func (o Option[T]) Unwrap() T {
	if !o.isSome {
		panic(NewOptionError(msgUnwrapNone))
	}
	return o.value
}

// UnwrapOr returns the contained value or the given fallback. The fallback
// is evaluated by the caller regardless of variant; use UnwrapOrElse when
// it is expensive.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.isSome {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the contained value or the supplier result. The
// supplier runs only if the Option is None.
func (o Option[T]) UnwrapOrElse(supplier func() T) T {
	if o.isSome {
		return o.value
	}
	return supplier()
}

// Expect is Unwrap with a caller-supplied diagnostic message.
func (o Option[T]) Expect(message string) T {
	if !o.isSome {
		panic(NewOptionError(message))
	}
	return o.value
}

// Filter keeps Some only when the predicate holds.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.isSome && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns this Option if Some, otherwise other. Both sides are already
// constructed; see OrElse for the lazy form.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return other
}

// OrElse returns this Option if Some, otherwise the supplier result. The
// supplier runs only if the Option is None.
func (o Option[T]) OrElse(supplier func() Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return supplier()
}

// Xor returns this Option unconditionally when it is Some, ignoring other;
// when None it returns other. Note the asymmetry against a textbook
// exclusive-or: Some("a").Xor(Some("b")) is Some("a"), not None.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return other
}

// Contains reports whether this is Some holding a value deeply equal to v.
func (o Option[T]) Contains(v T) bool {
	return o.isSome && equalValues(o.value, v)
}

// Inspect calls consumer with the value if Some and returns the Option
// unchanged, for side effects mid-chain.
func (o Option[T]) Inspect(consumer func(T)) Option[T] {
	if o.isSome {
		consumer(o.value)
	}
	return o
}

// IfSome calls consumer with the value if Some.
func (o Option[T]) IfSome(consumer func(T)) {
	if o.isSome {
		consumer(o.value)
	}
}

// IfNone calls fn if None.
func (o Option[T]) IfNone(fn func()) {
	if !o.isSome {
		fn()
	}
}

// IfSomeOrElse dispatches to exactly one of the two callbacks.
func (o Option[T]) IfSomeOrElse(onSome func(T), onNone func()) {
	if o.isSome {
		onSome(o.value)
	} else {
		onNone()
	}
}

// ToNullable returns a pointer to a copy of the value, or nil for None.
// Inverse of OfNullable.
func (o Option[T]) ToNullable() *T {
	if !o.isSome {
		return nil
	}
	v := o.value
	return &v
}

// Get exposes the value in Go's native comma-ok convention.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

// Stream returns a lazy sequence of zero or one element: the value if Some,
// nothing if None.
func (o Option[T]) Stream() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSome {
			yield(o.value)
		}
	}
}

func (o Option[T]) Id() uuid.UUID {
	return o.id
}

func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
