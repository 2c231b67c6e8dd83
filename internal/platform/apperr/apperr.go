package apperr

import (
	"errors"
	"fmt"
)

// Sentinels de la taxonomía de errores. Los handlers solo miran estos
// (vía errors.Is) para decidir el status HTTP.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
)

// Error lleva el mensaje que se devuelve al cliente tal cual,
// envolviendo uno de los sentinels.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

func Invalid(msg string) error {
	return &Error{Kind: ErrInvalidInput, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

func Duplicate(format string, args ...any) error {
	return &Error{Kind: ErrDuplicate, Msg: fmt.Sprintf(format, args...)}
}
