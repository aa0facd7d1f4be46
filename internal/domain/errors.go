package domain

import "errors"

var (
	// ErrInvalidInput indicates a required field is missing or the body is unreadable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthenticated indicates no bearer token was supplied.
	ErrUnauthenticated = errors.New("no token supplied")

	// ErrForbidden indicates the bearer token is malformed, forged or expired.
	ErrForbidden = errors.New("invalid or expired token")

	// ErrNotFound indicates the target record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates another customer already uses the email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreFault wraps any unexpected backing store error.
	ErrStoreFault = errors.New("store fault")
)
