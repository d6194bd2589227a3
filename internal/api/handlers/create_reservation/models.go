package create_reservation

import (
	"time"

	"github.com/petmily/ClinicReservationService/internal/api/handlers"
	"github.com/petmily/ClinicReservationService/internal/domain"
	createReservation "github.com/petmily/ClinicReservationService/internal/usecase/create_reservation"
	"github.com/petmily/ClinicReservationService/pkg/types"
)

// CreateReservationRequest is the HTTP request body
type CreateReservationRequest struct {
	PetID     int64   `json:"petId"`
	Date      string  `json:"date"`      // YYYY-MM-DD
	StartTime string  `json:"startTime"` // HH:MM
	CareType  string  `json:"careType"`  // GENERAL | VACCINATION
	Symptom   *string `json:"symptom,omitempty"`
}

// ToUseCaseRequest parses date and time and binds the authenticated user
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		PetID:     r.PetID,
		Date:      date,
		StartTime: startTime,
		CareType:  domain.CareType(r.CareType),
		Symptom:   r.Symptom,
	}, nil
}

// FromUseCaseResponse converts the use case result to the wire shape
func FromUseCaseResponse(res *createReservation.Response) *handlers.ReservationView {
	return &handlers.ReservationView{
		ID:        res.ID,
		UserID:    res.UserID,
		PetID:     res.PetID,
		DoctorID:  res.DoctorID,
		Date:      res.Date.Format(domain.DateFormat),
		StartTime: res.StartTime.String(),
		CareType:  string(res.CareType),
		Status:    string(res.Status),
		Symptom:   res.Symptom,
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
		UpdatedAt: res.UpdatedAt.Format(time.RFC3339),
	}
}
