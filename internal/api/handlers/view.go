package handlers

import (
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/service/reservations/models"
)

// ReservationView is the wire representation of one reservation, shared by
// every endpoint that returns reservations.
type ReservationView struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	PetID     int64   `json:"petId"`
	DoctorID  *int64  `json:"doctorId,omitempty"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	CareType  string  `json:"careType"`
	Status    string  `json:"status"`
	Symptom   *string `json:"symptom,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ViewFromDomain converts a domain entity to the wire shape
func ViewFromDomain(res *domain.Reservation) *ReservationView {
	return &ReservationView{
		ID:        res.ID,
		UserID:    res.UserID,
		PetID:     res.PetID,
		DoctorID:  res.DoctorID,
		Date:      res.ReservationDate.Format(domain.DateFormat),
		StartTime: res.StartTime.String(),
		CareType:  string(res.CareType),
		Status:    string(res.Status),
		Symptom:   res.Symptom,
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
		UpdatedAt: res.UpdatedAt.Format(time.RFC3339),
	}
}

// ViewFromService converts a service projection to the wire shape
func ViewFromService(res *models.ReservationResponse) *ReservationView {
	return &ReservationView{
		ID:        res.ID,
		UserID:    res.UserID,
		PetID:     res.PetID,
		DoctorID:  res.DoctorID,
		Date:      res.Date.Format(domain.DateFormat),
		StartTime: res.StartTime,
		CareType:  res.CareType,
		Status:    res.Status,
		Symptom:   res.Symptom,
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
		UpdatedAt: res.UpdatedAt.Format(time.RFC3339),
	}
}

// ViewListFromService converts a service list projection
func ViewListFromService(list *models.ReservationListResponse) []*ReservationView {
	out := make([]*ReservationView, len(list.Reservations))
	for i, res := range list.Reservations {
		out[i] = ViewFromService(res)
	}
	return out
}
