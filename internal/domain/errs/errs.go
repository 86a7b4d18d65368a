// Package errs carries the domain error taxonomy. Usecases return these;
// the HTTP adapter maps each kind to a status code.
package errs

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: malformed or out-of-range input; never mutates state.
	KindValidation
	// KindNotFound: a referenced entity is absent.
	KindNotFound
	// KindConflict: the operation is illegal in the entity's current state
	// (non-actionable status, insufficient balance, duplicate identity).
	KindConflict
	// KindAuth: missing or invalid caller identity.
	KindAuth
	// KindInternal: storage or infrastructure failure; the cause is logged
	// and callers see a generic message.
	KindInternal
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, a ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, a...)}
}

func NotFoundf(format string, a ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, a...)}
}

func Conflictf(format string, a ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, a...)}
}

func Authf(format string, a ...any) *Error {
	return &Error{Kind: KindAuth, Msg: fmt.Sprintf(format, a...)}
}

func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf classifies any error; wrapped taxonomy errors keep their kind,
// everything else is KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
