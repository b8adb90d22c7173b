package ferrous

import (
	"errors"
	"strconv"
	"testing"
)

func TestCatching_Success(t *testing.T) {
	t.Parallel()

	r := Catching(func() (int, error) { return 5, nil })
	if !r.Contains(5) {
		t.Fatalf("expected Ok(5), got: %v", r)
	}
}

func TestCatching_ReturnedError(t *testing.T) {
	t.Parallel()

	r := Catching(func() (int, error) { return 0, errors.New("x") })
	if !r.IsErr() || r.UnwrapErr().Error() != "x" {
		t.Fatalf("expected Err(x), got: %v", r)
	}
}

func TestCatching_PanicWithError(t *testing.T) {
	t.Parallel()

	r := Catching(func() (int, error) { panic(errors.New("x")) })
	if !r.IsErr() || r.UnwrapErr().Error() != "x" {
		t.Fatalf("expected Err(x), got: %v", r)
	}
}

func TestCatching_PanicWithPlainValue(t *testing.T) {
	t.Parallel()

	r := Catching(func() (int, error) { panic("kaput") })
	if !r.IsErr() || r.UnwrapErr().Error() != "kaput" {
		t.Fatalf("expected Err(kaput), got: %v", r)
	}
}

func TestCatchingWith_MapsFault(t *testing.T) {
	t.Parallel()

	r := CatchingWith(
		func() (int, error) { return 0, errors.New("timeout") },
		func(err error) string { return "db: " + err.Error() })
	if !r.ContainsErr("db: timeout") {
		t.Fatalf("expected mapped error, got: %v", r)
	}

	r = CatchingWith(
		func() (int, error) { return 3, nil },
		func(err error) string { return err.Error() })
	if !r.Contains(3) {
		t.Fatalf("expected Ok(3), got: %v", r)
	}
}

func TestCatchingApply(t *testing.T) {
	t.Parallel()

	r := CatchingApply(strconv.Atoi, "25")
	if !r.Contains(25) {
		t.Fatalf("expected Ok(25), got: %v", r)
	}

	r = CatchingApply(strconv.Atoi, "bad")
	if !r.IsErr() {
		t.Fatalf("expected Err, got: %v", r)
	}
}

func TestCatchingApplyWith(t *testing.T) {
	t.Parallel()

	r := CatchingApplyWith(strconv.Atoi, "bad",
		func(err error) string { return "invalid number" })
	if !r.ContainsErr("invalid number") {
		t.Fatalf("expected mapped error, got: %v", r)
	}
}

func TestCatching_NeverRethrows(t *testing.T) {
	t.Parallel()

	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("captured fault must not escape: %v", rec)
		}
	}()

	_ = Catching(func() (int, error) { panic("contained") })
	_ = Of(func() (int, error) { panic("contained") })
}
