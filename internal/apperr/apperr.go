package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Code is the application error taxonomy. Values double as HTTP status codes
// so handlers can write them straight into the response.
type Code int

const (
	BadRequestCode      Code = 400
	UnauthenticatedCode Code = 401
	NotFoundCode        Code = 404
	ConflictCode        Code = 409
	InternalErrorCode   Code = 500
	NotImplementedCode  Code = 501
)

var ErrStrMap = map[Code]string{
	BadRequestCode:      "bad request",
	UnauthenticatedCode: "unauthenticated",
	NotFoundCode:        "record not found",
	ConflictCode:        "conflict",
	InternalErrorCode:   "internal server error",
	NotImplementedCode:  "not implemented",
}

// Error carries a code plus one or more client-facing messages. A foreign-key
// validation failure reports every missing reference, so Messages may hold
// more than one entry; Error() returns the joined form.
type Error struct {
	Code     Code
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

func New(code Code, msg string) *Error {
	return &Error{Code: code, Messages: []string{msg}}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// NewList builds an error whose payload is the whole message list, in order.
func NewList(code Code, msgs []string) *Error {
	return &Error{Code: code, Messages: msgs}
}

// CodeOf extracts the application code from err, falling back to
// InternalErrorCode for anything that is not an *Error.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return InternalErrorCode
}

// MessagesOf returns the client-facing messages for err. Unknown errors map to
// the generic internal label so no store detail leaks to the client.
func MessagesOf(err error) []string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Messages
	}
	return []string{ErrStrMap[InternalErrorCode]}
}

// IsCode reports whether err is an application error with the given code.
func IsCode(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
