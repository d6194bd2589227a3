package models

import (
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
)

// ReservationResponse is the service-level projection of one reservation
type ReservationResponse struct {
	ID        int64
	UserID    int64
	PetID     int64
	DoctorID  *int64
	Date      time.Time
	StartTime string
	CareType  string
	Status    string
	Symptom   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationListResponse wraps a list projection
type ReservationListResponse struct {
	Reservations []*ReservationResponse
	Total        int
}

// DoctorResponse is the assignable-doctor projection
type DoctorResponse struct {
	ID     int64
	Name   string
	OnDuty bool
}

// FromDomainReservation converts a domain entity to the response projection
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        res.ID,
		UserID:    res.UserID,
		PetID:     res.PetID,
		DoctorID:  res.DoctorID,
		Date:      res.ReservationDate,
		StartTime: res.StartTime.String(),
		CareType:  string(res.CareType),
		Status:    string(res.Status),
		Symptom:   res.Symptom,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
}

// FromDomainReservationList converts a slice of domain entities
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, len(list))
	for i, res := range list {
		out[i] = FromDomainReservation(res)
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}

// ToDomainStatus validates and converts a status string
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !domain.ValidStatus(status) {
		return "", domain.ErrUnknownStatus
	}
	return status, nil
}
