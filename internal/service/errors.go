package service

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error a service returns for a caller mistake wraps exactly
// one of these; handlers map them to 400, 404 and 401.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrEmailTaken           = fmt.Errorf("%w: Error: Email is already taken!", ErrBadRequest)
	ErrAlreadyParticipating = fmt.Errorf("%w: user is already participating", ErrBadRequest)
	ErrNotParticipating     = fmt.Errorf("%w: user is not participating", ErrBadRequest)
	ErrSessionNotFound      = fmt.Errorf("%w: session not found", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrTeacherNotFound      = fmt.Errorf("%w: teacher not found", ErrNotFound)
	ErrBadCredentials       = fmt.Errorf("%w: Bad credentials", ErrUnauthorized)
	ErrNotAccountOwner      = fmt.Errorf("%w: cannot delete another user's account", ErrUnauthorized)
)

// UserNotFoundError is returned by the identity resolver when no user is
// registered with Email.
type UserNotFoundError struct {
	Email string
}

func (e *UserNotFoundError) Error() string {
	email := e.Email
	if email == "" {
		email = "null"
	}
	return "User Not Found with email: " + email
}

func (e *UserNotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError wraps a payload validation failure as a bad request.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Is(target error) bool { return target == ErrBadRequest }

func (e *ValidationError) Unwrap() error { return e.Err }

// Message returns the human readable part of a kind-wrapped error, without
// the "bad request: " style prefix.
func Message(err error) string {
	msg := err.Error()
	for _, kind := range []error{ErrBadRequest, ErrNotFound, ErrUnauthorized} {
		if rest, ok := strings.CutPrefix(msg, kind.Error()+": "); ok {
			return rest
		}
	}
	return msg
}
