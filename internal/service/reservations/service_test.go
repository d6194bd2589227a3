package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/ClinicReservationService/internal/domain"
	reservationRepo "github.com/petmily/ClinicReservationService/internal/infra/storage/reservation"
	"github.com/petmily/ClinicReservationService/internal/integrations/staffservice"
	"github.com/petmily/ClinicReservationService/pkg/ptr"
)

type fakeRepo struct {
	reservation *domain.Reservation
	list        []*domain.Reservation
	getErr      error
	listErr     error

	gotStatus *domain.ReservationStatus
	gotFilter *domain.ReservationsFilter
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.reservation, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, _ int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	f.gotStatus = status
	return f.list, f.listErr
}

func (f *fakeRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.gotFilter = &filter
	return f.list, f.listErr
}

func (f *fakeRepo) GetReservedDays(_ context.Context, _, _ time.Time, _ *int64) ([]time.Time, error) {
	return nil, nil
}

type fakeStaffClient struct {
	doctors []staffservice.Doctor
	err     error
}

func (f *fakeStaffClient) ListOnDutyDoctors(_ context.Context) ([]staffservice.Doctor, error) {
	return f.doctors, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleReservation(userID int64) *domain.Reservation {
	return &domain.Reservation{
		ID:              42,
		UserID:          userID,
		PetID:           3,
		ReservationDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		CareType:        domain.CareGeneral,
		Status:          domain.StatusPending,
	}
}

func TestGetByID_OwnerAccess(t *testing.T) {
	svc := NewService(&fakeRepo{reservation: sampleReservation(7)}, &fakeStaffClient{}, nopLogger{})

	t.Run("own reservation", func(t *testing.T) {
		res, err := svc.GetByID(context.Background(), 42, domain.OwnerScope(7))
		require.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
	})

	t.Run("someone else's reservation", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, domain.OwnerScope(8))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("staff sees any reservation", func(t *testing.T) {
		res, err := svc.GetByID(context.Background(), 42, domain.StaffScope(100))
		require.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
	})
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: reservationRepo.ErrReservationNotFound}, &fakeStaffClient{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, domain.StaffScope(100))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByDate(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("staff only", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeStaffClient{}, nopLogger{})
		_, err := svc.GetByDate(context.Background(), date, domain.OwnerScope(7))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("single-date filter", func(t *testing.T) {
		repo := &fakeRepo{list: []*domain.Reservation{sampleReservation(7)}}
		svc := NewService(repo, &fakeStaffClient{}, nopLogger{})

		list, err := svc.GetByDate(context.Background(), date, domain.StaffScope(100))
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)

		require.NotNil(t, repo.gotFilter)
		assert.Equal(t, date, *repo.gotFilter.StartDate)
		assert.Equal(t, date, *repo.gotFilter.EndDate)
	})

	t.Run("zero date rejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeStaffClient{}, nopLogger{})
		_, err := svc.GetByDate(context.Background(), time.Time{}, domain.StaffScope(100))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetByUser(t *testing.T) {
	t.Run("owner queries self", func(t *testing.T) {
		repo := &fakeRepo{list: []*domain.Reservation{sampleReservation(7)}}
		svc := NewService(repo, &fakeStaffClient{}, nopLogger{})

		list, err := svc.GetByUser(context.Background(), 7, nil, domain.OwnerScope(7))
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
		assert.Nil(t, repo.gotStatus)
	})

	t.Run("owner queries someone else", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeStaffClient{}, nopLogger{})
		_, err := svc.GetByUser(context.Background(), 8, nil, domain.OwnerScope(7))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("staff queries anyone", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeStaffClient{}, nopLogger{})
		_, err := svc.GetByUser(context.Background(), 7, nil, domain.StaffScope(100))
		require.NoError(t, err)
	})

	t.Run("status filter passed through", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, &fakeStaffClient{}, nopLogger{})

		_, err := svc.GetByUser(context.Background(), 7, ptr.Ptr("PENDING"), domain.OwnerScope(7))
		require.NoError(t, err)
		require.NotNil(t, repo.gotStatus)
		assert.Equal(t, domain.StatusPending, *repo.gotStatus)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeStaffClient{}, nopLogger{})
		_, err := svc.GetByUser(context.Background(), 7, ptr.Ptr("CANCELLED"), domain.OwnerScope(7))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestListAssignableDoctors(t *testing.T) {
	t.Run("staff only", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeStaffClient{}, nopLogger{})
		_, err := svc.ListAssignableDoctors(context.Background(), domain.OwnerScope(7))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("proxies the directory", func(t *testing.T) {
		staff := &fakeStaffClient{doctors: []staffservice.Doctor{
			{ID: 5, Name: "Dr. Han", OnDuty: true},
			{ID: 6, Name: "Dr. Seo", OnDuty: true},
		}}
		svc := NewService(&fakeRepo{}, staff, nopLogger{})

		doctors, err := svc.ListAssignableDoctors(context.Background(), domain.StaffScope(100))
		require.NoError(t, err)
		require.Len(t, doctors, 2)
		assert.Equal(t, "Dr. Han", doctors[0].Name)
	})

	t.Run("directory down", func(t *testing.T) {
		staff := &fakeStaffClient{err: staffservice.ErrInternal}
		svc := NewService(&fakeRepo{}, staff, nopLogger{})

		_, err := svc.ListAssignableDoctors(context.Background(), domain.AdminScope(1))
		assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	})
}
