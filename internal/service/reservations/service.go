package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
	reservationRepo "github.com/petmily/ClinicReservationService/internal/infra/storage/reservation"
	"github.com/petmily/ClinicReservationService/internal/service/reservations/models"
)

// Service is the role-scoped read surface over the reservation store.
// Every operation takes an explicit viewer scope; there is no ambient
// current-user anywhere in here.
type Service struct {
	reservationRepo ReservationRepository
	staffClient     StaffServiceClient
	logger          Logger
}

// NewService creates the reservation query service
func NewService(
	reservationRepo ReservationRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		staffClient:     staffClient,
		logger:          logger,
	}
}

// GetByID fetches one reservation. Owners see only their own records;
// staff and admin see everything.
func (s *Service) GetByID(ctx context.Context, id int64, scope domain.ViewerScope) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, scope.UserID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if !scope.SeesAllReservations() && res.UserID != scope.UserID {
		s.logger.Warn("GetByID: user=%d denied access to reservation id=%d", scope.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// GetByDate fetches all reservations clinic-wide for one date, ordered by
// start time. Staff/admin only.
func (s *Service) GetByDate(ctx context.Context, date time.Time, scope domain.ViewerScope) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByDate: fetching reservations for date=%s, user=%d",
		date.Format(domain.DateFormat), scope.UserID)

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !scope.SeesAllReservations() {
		s.logger.Warn("GetByDate: user=%d with role=%s denied", scope.UserID, scope.Role)
		return nil, ErrAccessDenied
	}

	filter := domain.ReservationsFilter{
		StartDate: &date,
		EndDate:   &date,
	}

	list, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("GetByDate: fetched %d reservations for date=%s", len(list), date.Format(domain.DateFormat))
	return models.FromDomainReservationList(list), nil
}

// GetByUser fetches one user's reservations across all dates. Owners may
// only query themselves; staff/admin may query anyone (support flows).
func (s *Service) GetByUser(ctx context.Context, userID int64, status *string, scope domain.ViewerScope) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByUser: fetching reservations for user=%d requested by user=%d", userID, scope.UserID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !scope.SeesAllReservations() && userID != scope.UserID {
		s.logger.Warn("GetByUser: user=%d denied access to reservations of user=%d", scope.UserID, userID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.ReservationStatus
	if status != nil {
		st, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("GetByUser: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &st
	}

	list, err := s.reservationRepo.GetByUserID(ctx, userID, domainStatus)
	if err != nil {
		s.logger.Error("GetByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("GetByUser: fetched %d reservations for user=%d", len(list), userID)
	return models.FromDomainReservationList(list), nil
}

// ListAssignableDoctors proxies the staff directory's on-duty list for the
// doctor picker. Staff/admin only.
func (s *Service) ListAssignableDoctors(ctx context.Context, scope domain.ViewerScope) ([]*models.DoctorResponse, error) {
	s.logger.Info("ListAssignableDoctors: requested by user=%d", scope.UserID)

	if !scope.SeesAllReservations() {
		s.logger.Warn("ListAssignableDoctors: user=%d with role=%s denied", scope.UserID, scope.Role)
		return nil, ErrAccessDenied
	}

	doctors, err := s.staffClient.ListOnDutyDoctors(ctx)
	if err != nil {
		s.logger.Error("ListAssignableDoctors: staff directory error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	out := make([]*models.DoctorResponse, len(doctors))
	for i, d := range doctors {
		out[i] = &models.DoctorResponse{
			ID:     d.ID,
			Name:   d.Name,
			OnDuty: d.OnDuty,
		}
	}

	s.logger.Info("ListAssignableDoctors: %d doctors on duty", len(out))
	return out, nil
}
