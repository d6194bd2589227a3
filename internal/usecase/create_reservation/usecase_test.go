package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/ClinicReservationService/internal/domain"
	reservationRepo "github.com/petmily/ClinicReservationService/internal/infra/storage/reservation"
	"github.com/petmily/ClinicReservationService/internal/integrations/notifyservice"
	"github.com/petmily/ClinicReservationService/internal/integrations/petservice"
	"github.com/petmily/ClinicReservationService/pkg/ptr"
)

type fakeRepo struct {
	existing  []*domain.Reservation
	createErr error
	created   *domain.Reservation
}

func (f *fakeRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *res
	out.ID = 101
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakePetClient struct {
	pet *petservice.Pet
	err error
}

func (f *fakePetClient) GetPet(_ context.Context, _ int64) (*petservice.Pet, error) {
	return f.pet, f.err
}

type fakeNotifyClient struct {
	events []notifyservice.Event
	err    error
}

func (f *fakeNotifyClient) Publish(_ context.Context, event notifyservice.Event) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		PetID:     3,
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		CareType:  domain.CareGeneral,
		Symptom:   ptr.Ptr("limping on the left front leg"),
	}
}

func newUseCase(repo *fakeRepo, pets *fakePetClient, notify *fakeNotifyClient) *UseCase {
	return NewUseCase(repo, pets, notify, fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	pets := &fakePetClient{pet: &petservice.Pet{ID: 3, Name: "Mongzzi", OwnerID: 7}}
	notify := &fakeNotifyClient{}

	resp, err := newUseCase(repo, pets, notify).Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Nil(t, resp.DoctorID)

	require.Len(t, notify.events, 1)
	assert.Equal(t, notifyservice.KindCreated, notify.events[0].Kind)
	assert.Equal(t, "Mongzzi", notify.events[0].PetName)
	assert.Equal(t, "09:00", notify.events[0].StartTime)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero user", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "zero pet", mutate: func(r *Request) { r.PetID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "off-grid time", mutate: func(r *Request) { r.StartTime = "09:15" }},
		{name: "lunch time", mutate: func(r *Request) { r.StartTime = "12:00" }},
		{name: "unknown care type", mutate: func(r *Request) { r.CareType = "SURGERY" }},
		{name: "oversized symptom", mutate: func(r *Request) {
			long := make([]byte, domain.MaxSymptomLength+1)
			for i := range long {
				long[i] = 'a'
			}
			r.Symptom = ptr.Ptr(string(long))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			uc := newUseCase(&fakeRepo{}, &fakePetClient{}, &fakeNotifyClient{})
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDateAccepted(t *testing.T) {
	repo := &fakeRepo{}
	pets := &fakePetClient{pet: &petservice.Pet{ID: 3, Name: "Mongzzi", OwnerID: 7}}

	req := validRequest()
	req.Date = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	_, err := newUseCase(repo, pets, &fakeNotifyClient{}).Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_PetChecks(t *testing.T) {
	t.Run("pet not found", func(t *testing.T) {
		pets := &fakePetClient{err: petservice.ErrPetNotFound}
		_, err := newUseCase(&fakeRepo{}, pets, &fakeNotifyClient{}).Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPetNotFound)
	})

	t.Run("pet owned by someone else", func(t *testing.T) {
		pets := &fakePetClient{pet: &petservice.Pet{ID: 3, Name: "Mongzzi", OwnerID: 99}}
		_, err := newUseCase(&fakeRepo{}, pets, &fakeNotifyClient{}).Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPetNotOwned)
	})

	t.Run("directory down", func(t *testing.T) {
		pets := &fakePetClient{err: petservice.ErrInternal}
		_, err := newUseCase(&fakeRepo{}, pets, &fakeNotifyClient{}).Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	})
}

func TestExecute_SlotTaken(t *testing.T) {
	pets := &fakePetClient{pet: &petservice.Pet{ID: 3, Name: "Mongzzi", OwnerID: 7}}

	t.Run("seen in day read", func(t *testing.T) {
		repo := &fakeRepo{existing: []*domain.Reservation{
			{ID: 55, StartTime: "09:00", Status: domain.StatusPending},
		}}
		_, err := newUseCase(repo, pets, &fakeNotifyClient{}).Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("rejected reservation frees the slot", func(t *testing.T) {
		repo := &fakeRepo{existing: []*domain.Reservation{
			{ID: 55, StartTime: "09:00", Status: domain.StatusRejected},
		}}
		_, err := newUseCase(repo, pets, &fakeNotifyClient{}).Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})

	t.Run("lost the race at insert", func(t *testing.T) {
		// Concurrent writer got the slot between the read and the insert;
		// the partial unique index surfaces it as the repo sentinel.
		repo := &fakeRepo{createErr: reservationRepo.ErrSlotTaken}
		_, err := newUseCase(repo, pets, &fakeNotifyClient{}).Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestExecute_NotifyFailureIsNotFatal(t *testing.T) {
	repo := &fakeRepo{}
	pets := &fakePetClient{pet: &petservice.Pet{ID: 3, Name: "Mongzzi", OwnerID: 7}}
	notify := &fakeNotifyClient{err: notifyservice.ErrInternal}

	resp, err := newUseCase(repo, pets, notify).Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}
