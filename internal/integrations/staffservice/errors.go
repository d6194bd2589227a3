package staffservice

import "errors"

var (
	// ErrDoctorNotFound is returned when the directory has no such doctor
	ErrDoctorNotFound = errors.New("staffservice client: doctor not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse is returned when the directory answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
