package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/lexforge/textlab/pkg/i18n"
)

// Error tags a failure with the logic path that produced it and an i18n
// message key for user-facing rendering.
type Error struct {
	Fn  string
	Msg string
	Err error
}

func New(fn, msg string, err error) *Error {
	return &Error{
		Fn:  fn,
		Msg: msg,
		Err: err,
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Fn, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Fn, e.Msg, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Key() string {
	return e.Msg
}

// Trace prepends fn to an already tagged error, or tags a plain one.
func Trace(fn string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return &Error{
			Fn:  fn + "." + e.Fn,
			Msg: e.Msg,
			Err: e.Err,
		}
	}
	return New(fn, i18n.ERROR_INTERNAL, err)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}
