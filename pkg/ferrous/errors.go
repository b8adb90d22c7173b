package ferrous

const (
	msgUnwrapNone  = "unwrap() called on 'none' type"
	msgUnwrapErr   = "unwrap() called on type 'err'"
	msgUnwrapErrOk = "unwrapErr() called on type 'ok'"
	msgNilSome     = "some() called with nil value"
	msgNilOk       = "ok() called with nil value"
	msgNilErr      = "err() called with nil error value"
	msgNilPairA    = "pair created with nil first value"
	msgNilPairB    = "pair created with nil second value"
)

// OptionError signals misuse of an Option accessor, such as calling Unwrap
// on None, or constructing Some with a nil payload. It is raised via panic
// and never recovered inside the library.
type OptionError struct {
	message string
}

func NewOptionError(message string) *OptionError {
	return &OptionError{message: message}
}

func (e *OptionError) Error() string {
	return e.message
}

// ResultError signals misuse of a Result accessor, such as calling Unwrap
// on Err or UnwrapErr on Ok, or constructing a variant with a nil payload.
type ResultError struct {
	message string
}

func NewResultError(message string) *ResultError {
	return &ResultError{message: message}
}

func (e *ResultError) Error() string {
	return e.message
}
