package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	NotFound         Kind = "not_found"
	PositionConflict Kind = "position_conflict"
	IndexOutOfRange  Kind = "index_out_of_range"
	RecordNotFound   Kind = "record_not_found"
	Validation       Kind = "validation"
	Store            Kind = "store"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the Kind of err, or Store for anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Store
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }

// Status maps an error kind to the HTTP status the thin transport layer uses.
func Status(err error) int {
	switch KindOf(err) {
	case NotFound, RecordNotFound:
		return http.StatusNotFound
	case PositionConflict:
		return http.StatusConflict
	case IndexOutOfRange, Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
