package get_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/ClinicReservationService/internal/domain"
)

type fakeRepo struct {
	reservedDays []time.Time
	err          error

	gotFrom   time.Time
	gotTo     time.Time
	gotUserID *int64
}

func (f *fakeRepo) GetReservedDays(_ context.Context, from, to time.Time, userID *int64) ([]time.Time, error) {
	f.gotFrom = from
	f.gotTo = to
	f.gotUserID = userID
	return f.reservedDays, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_FullMonthCoverage(t *testing.T) {
	repo := &fakeRepo{reservedDays: []time.Time{
		time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Year:  2026,
		Month: 2,
		Scope: domain.StaffScope(100),
	})

	require.NoError(t, err)
	// 2026 is not a leap year
	require.Len(t, resp.Days, 28)

	for i, marker := range resp.Days {
		assert.Equal(t, i+1, marker.Day)
	}
	assert.True(t, resp.Days[2].HasReservation)
	assert.True(t, resp.Days[13].HasReservation)
	assert.False(t, resp.Days[0].HasReservation)
	assert.False(t, resp.Days[27].HasReservation)

	// Full month queried
	assert.Equal(t, 1, repo.gotFrom.Day())
	assert.Equal(t, 28, repo.gotTo.Day())
}

func TestExecute_MonthLengths(t *testing.T) {
	tests := []struct {
		year  int
		month int
		days  int
	}{
		{2026, 1, 31},
		{2026, 4, 30},
		{2028, 2, 29}, // leap year
	}

	for _, tt := range tests {
		uc := NewUseCase(&fakeRepo{}, nopLogger{})
		resp, err := uc.Execute(context.Background(), &Request{
			Year:  tt.year,
			Month: tt.month,
			Scope: domain.AdminScope(1),
		})
		require.NoError(t, err)
		assert.Len(t, resp.Days, tt.days, "%d-%02d", tt.year, tt.month)
	}
}

func TestExecute_OwnerScopeNarrows(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Year:  2026,
		Month: 9,
		Scope: domain.OwnerScope(7),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.gotUserID)
	assert.Equal(t, int64(7), *repo.gotUserID)
}

func TestExecute_StaffScopeSeesAll(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Year:  2026,
		Month: 9,
		Scope: domain.StaffScope(100),
	})

	require.NoError(t, err)
	assert.Nil(t, repo.gotUserID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	for _, req := range []*Request{
		{Year: 2026, Month: 0},
		{Year: 2026, Month: 13},
		{Year: 0, Month: 5},
		{Year: 10000, Month: 5},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "year=%d month=%d", req.Year, req.Month)
	}
}

func TestExecute_StoreDown(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 9, Scope: domain.AdminScope(1)})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
