// Package errors wraps stdlib errors and pkg/errors behind one import so
// callers get stack traces on Wrap and can report where a failure began.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// New returns a plain error without a stack; sentinels should not carry one.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType is As for callers that want the typed value back.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Origin returns "file.go:line" of the innermost recorded stack, which is
// where the failure was first wrapped. Errors without a stack return "".
func Origin(err error) string {
	var origin string
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		st, ok := e.(stackTracer)
		if !ok {
			continue
		}

		if frames := st.StackTrace(); len(frames) > 0 {
			origin = fmt.Sprintf("%s:%d", frames[0], frames[0])
		}
	}

	return origin
}
