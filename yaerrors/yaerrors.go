// Package yaerrors provides the error type shared by every GoYaTgMock package.
//
// An Error carries an HTTP-like status code, the sentinel cause it was created from
// and a human readable traceback that grows each time the error is wrapped on its way
// up the call stack. errors.Is works against the sentinel cause.
//
// Example usage:
//
//	var ErrBadChat = errors.New("bad chat")
//
//	func pick(chatType string) yaerrors.Error {
//		return yaerrors.FromError(http.StatusBadRequest, ErrBadChat, "unknown chat type "+chatType)
//	}
//
//	if err := pick("room"); err != nil {
//		err = err.Wrap("get chat")
//		errors.Is(err, ErrBadChat) // true
//	}
package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgMock/yalogger"
)

// Error is an error with a status code and a wrap-able traceback.
type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log yalogger.Logger) Error
	Code() int
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparator  = " | "
	traceSeparator = " -> "
)

type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError builds an Error from a cause, prefixing the traceback with wrap.
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog is FromError that also reports the message at the Error level.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	err := FromError(code, cause, wrap)

	if log != nil {
		log.Error(err.(*yaError).traceback) //nolint:forcetypeassert
	}

	return err
}

// FromString builds an Error whose cause is a fresh error holding msg.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString that also reports msg at the Error level.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	if log != nil {
		log.Error(msg)
	}

	return FromString(code, msg)
}

// Error formats the error as "<code> | <traceback>".
func (e *yaError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%d%s%s", e.code, codeSeparator, e.traceback)
}

// Unwrap returns the cause the error was created from.
func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the outermost traceback segment, i.e. the last Wrap message.
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	head, _, _ := strings.Cut(e.traceback, traceSeparator)

	return head
}

// Wrap prepends msg to the traceback. Call it every time the error crosses a
// function boundary so the final message reads outermost first.
func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)

	e.traceback = msg + traceSeparator + e.traceback

	return e
}

// WrapWithLog is Wrap that also reports msg at the Error level.
func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	if log != nil {
		log.Error(msg)
	}

	return e.Wrap(msg)
}

// Code returns the status code of the error.
func (e *yaError) Code() int {
	safetyCheck(&e)

	return e.code
}

func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
