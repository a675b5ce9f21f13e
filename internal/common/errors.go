package common

import "errors"

var (
	// ErrEmailTaken is returned when a signup email already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when no account exists for an email.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned when the supplied password does not verify.
	ErrWrongPassword = errors.New("invalid password")

	// ErrNotFound is returned when a record does not exist or is not owned
	// by the caller.
	ErrNotFound = errors.New("not found")

	// ErrMalformedResponse is returned when the model reply is missing the
	// expected section markers.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrUpstreamUnavailable is returned when the model service cannot be
	// reached or times out.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
