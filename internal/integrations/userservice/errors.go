package userservice

import "errors"

var (
	// ErrUserNotFound is returned when the directory has no such user
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse is returned when the directory answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("userservice client: invalid response")
)
