package create_reservation

import (
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/pkg/types"
)

// Request carries a pet owner's booking attempt
type Request struct {
	UserID    int64            // booking user
	PetID     int64            // pet being brought in, must belong to UserID
	Date      time.Time        // reservation date, no time component
	StartTime types.TimeString // one of the clinic grid values
	CareType  domain.CareType  // GENERAL | VACCINATION
	Symptom   *string          // optional free-text notes
}

// Response is the created reservation
type Response struct {
	ID        int64
	UserID    int64
	PetID     int64
	DoctorID  *int64 // always nil right after creation
	Date      time.Time
	StartTime types.TimeString
	CareType  domain.CareType
	Status    domain.ReservationStatus
	Symptom   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:        res.ID,
		UserID:    res.UserID,
		PetID:     res.PetID,
		DoctorID:  res.DoctorID,
		Date:      res.ReservationDate,
		StartTime: res.StartTime,
		CareType:  res.CareType,
		Status:    res.Status,
		Symptom:   res.Symptom,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
}
