package internal

import "github.com/pkg/errors"

// Boolean results cover every outcome the algorithm expects. Anything else is
// a broken invariant deep inside the ring juggling, and threading errors
// through all of it would add a lot of noise. Instead, we panic, and the public
// API recovers to convert to an error.

// TriangulateError marks a panic raised by fatalf. Runtime errors and other
// foreign panics are not converted.
type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
