package petservice

import "errors"

var (
	// ErrPetNotFound is returned when the directory has no such pet
	ErrPetNotFound = errors.New("petservice client: pet not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("petservice client: internal error")

	// ErrInvalidResponse is returned when the directory answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("petservice client: invalid response")
)
