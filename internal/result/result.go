package result

// Result reports success or failure of a core operation as data.
// A success carries a value; a failure carries a message and zero or
// more detail errors. Envelopes are created once and never mutated.
type Result[T any] struct {
	Success bool
	Value   T
	Message string
	Errors  []string
}

// Ok creates a successful result carrying value. An optional message
// describes the outcome for display.
func Ok[T any](value T, message ...string) Result[T] {
	r := Result[T]{Success: true, Value: value}
	if len(message) > 0 {
		r.Message = message[0]
	}
	return r
}

// Fail creates a failed result. The value is the zero value of T and
// must not be used by callers.
func Fail[T any](message string, errs ...string) Result[T] {
	return Result[T]{Success: false, Message: message, Errors: errs}
}

// ValidationError creates a failed result from command validation errors.
func ValidationError[T any](errs []string) Result[T] {
	return Result[T]{Success: false, Message: "Validation failed", Errors: errs}
}

// Failed reports whether the result is a failure.
func (r Result[T]) Failed() bool {
	return !r.Success
}
