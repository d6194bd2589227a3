package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/pkg/types"
)

type fakeRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s must be free on an empty day", slot.StartTime)
	}
}

func TestExecute_OccupiedSlots(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		{ID: 1, StartTime: "09:00", Status: domain.StatusPending},
		{ID: 2, StartTime: "13:30", Status: domain.StatusApproved},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)

	byTime := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		byTime[slot.StartTime] = slot.Available
	}
	assert.False(t, byTime["09:00"])
	assert.False(t, byTime["13:30"])
	assert.True(t, byTime["09:30"])
	assert.True(t, byTime["17:30"])
}

func TestExecute_RejectedFreesSlot(t *testing.T) {
	// Active-only filtering happens in the store; a rejected row that
	// slips through must still not block the slot.
	repo := &fakeRepo{reservations: []*domain.Reservation{
		{ID: 1, StartTime: "09:00", Status: domain.StatusRejected},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreDown(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestResolveSlots_DuplicateHolders(t *testing.T) {
	// Two active rows on one slot cannot happen through the write paths;
	// the resolver reports the corruption instead of hiding it.
	slots, conflicted := resolveSlots([]*domain.Reservation{
		{ID: 1, StartTime: "09:00", Status: domain.StatusPending},
		{ID: 2, StartTime: "09:00", Status: domain.StatusApproved},
	})

	require.Len(t, conflicted, 1)
	assert.Equal(t, types.TimeString("09:00"), conflicted[0])

	for _, slot := range slots {
		if slot.StartTime == "09:00" {
			assert.False(t, slot.Available)
		}
	}
}
