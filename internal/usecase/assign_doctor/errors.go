package assign_doctor

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("assign_doctor: invalid input data")

	// ErrAccessDenied is returned when the actor is not clinic staff
	ErrAccessDenied = errors.New("assign_doctor: access denied")

	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("assign_doctor: reservation not found")

	// ErrAlreadyRejected is returned when assigning to a rejected
	// reservation - a doctor id has no meaning there
	ErrAlreadyRejected = errors.New("assign_doctor: reservation already rejected")

	// ErrDoctorNotFound is returned when the staff directory has no such doctor
	ErrDoctorNotFound = errors.New("assign_doctor: doctor not found")

	// ErrDoctorOffDuty is returned when the doctor is not on duty at
	// assignment time
	ErrDoctorOffDuty = errors.New("assign_doctor: doctor is not on duty")

	// ErrStoreUnavailable is returned when the reservation store cannot
	// be reached
	ErrStoreUnavailable = errors.New("assign_doctor: reservation store unavailable")

	// ErrDirectoryUnavailable is returned when the staff directory cannot
	// be reached
	ErrDirectoryUnavailable = errors.New("assign_doctor: staff directory unavailable")
)
