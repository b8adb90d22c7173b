package ferrous

import "fmt"

// Adapters between Go's fault idioms and the two sum types. Each factory
// invokes a caller-supplied computation, capturing a returned error or a
// panic into the failing variant. Captured faults are fully recovered and
// never rethrown; panics raised outside the computation (for example a nil
// payload reaching Ok) still propagate.

// Catching runs fn and converts its outcome: Ok on success, Err carrying
// the returned error or the recovered panic otherwise.
func Catching[T any](fn func() (T, error)) Result[T, error] {
	v, err := tryCall(fn)
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// CatchingWith is Catching with a fault-mapping step: any captured error is
// passed through mapper to produce the Err payload.
func CatchingWith[T, E any](fn func() (T, error), mapper func(error) E) Result[T, E] {
	v, err := tryCall(fn)
	if err != nil {
		return Err[T, E](mapper(err))
	}
	return Ok[T, E](v)
}

// CatchingApply is Catching for one-argument computations.
func CatchingApply[In, T any](fn func(In) (T, error), input In) Result[T, error] {
	return Catching(func() (T, error) {
		return fn(input)
	})
}

// CatchingApplyWith is CatchingWith for one-argument computations.
func CatchingApplyWith[In, T, E any](fn func(In) (T, error), input In, mapper func(error) E) Result[T, E] {
	return CatchingWith(func() (T, error) {
		return fn(input)
	}, mapper)
}

// tryCall invokes fn, turning a panic into a returned error. A panic with
// an error value is kept as-is so its message survives mapping.
func tryCall[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", rec)
			}
		}
	}()
	return fn()
}
