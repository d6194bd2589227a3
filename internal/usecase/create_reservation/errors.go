package create_reservation

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data, including a
	// start time that is not a member of the clinic grid and an
	// unrecognized care type
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrPetNotFound is returned when the pet directory has no such pet
	ErrPetNotFound = errors.New("create_reservation: pet not found")

	// ErrPetNotOwned is returned when the pet does not belong to the
	// booking user
	ErrPetNotOwned = errors.New("create_reservation: pet does not belong to user")

	// ErrSlotTaken is returned when a non-rejected reservation already
	// holds the requested (date, time) slot
	ErrSlotTaken = errors.New("create_reservation: slot is not available")

	// ErrStoreUnavailable is returned when the reservation store cannot
	// be reached
	ErrStoreUnavailable = errors.New("create_reservation: reservation store unavailable")

	// ErrDirectoryUnavailable is returned when the pet directory cannot
	// be reached
	ErrDirectoryUnavailable = errors.New("create_reservation: pet directory unavailable")
)
