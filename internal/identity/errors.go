package identity

import (
	"errors"
	"strings"
)

// ErrorKind is the machine-readable failure reason reported by a provider.
type ErrorKind string

const (
	KindInvalidCredential ErrorKind = "invalid-credential"
	KindEmailInUse        ErrorKind = "email-already-in-use"
	KindInvalidEmail      ErrorKind = "invalid-email"
	KindWeakPassword      ErrorKind = "weak-password"
	KindNetwork           ErrorKind = "network-request-failed"
	KindInternal          ErrorKind = "internal-error"
)

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrInvalidCredential = &Error{Kind: KindInvalidCredential}
	ErrEmailInUse        = &Error{Kind: KindEmailInUse}
	ErrInvalidEmail      = &Error{Kind: KindInvalidEmail}
	ErrWeakPassword      = &Error{Kind: KindWeakPassword}
	ErrNetwork           = &Error{Kind: KindNetwork}
	ErrInternal          = &Error{Kind: KindInternal}
)

// Error is a rejected identity operation.
type Error struct {
	Kind ErrorKind
	Err  error
}

// NewError wraps cause under kind. cause may be nil.
func NewError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// Code is the namespaced code, e.g. "auth/invalid-credential".
func (e *Error) Code() string {
	return "auth/" + string(e.Kind)
}

// Message is the text shown next to the form: the kind with dashes turned
// into spaces and the first letter capitalised ("Email already in use").
func (e *Error) Message() string {
	msg := strings.ReplaceAll(string(e.Kind), "-", " ")
	if msg == "" {
		return "An unknown error occurred"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code() + ": " + e.Err.Error()
	}
	return e.Code()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// AsError normalises any error into an *Error. Unknown errors become
// internal-error.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewError(KindInternal, err)
}
