package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	appointmentRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/appointment"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

type fakeRepo struct {
	byID      map[int64]*domain.Appointment
	listed    []*domain.Appointment
	cancelled []int64
	statuses  map[int64]domain.AppointmentStatus
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:     make(map[int64]*domain.Appointment),
		statuses: make(map[int64]domain.AppointmentStatus),
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appointment, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appointment, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.listed, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.statuses[id] = status
	return nil
}

type fakeCache struct {
	invalidated []time.Time
}

func (f *fakeCache) Invalidate(date time.Time) {
	f.invalidated = append(f.invalidated, date)
}

type fakeEvents struct {
	cancelled []*domain.Appointment
	err       error
}

func (f *fakeEvents) AppointmentCancelled(_ context.Context, appointment *domain.Appointment) error {
	f.cancelled = append(f.cancelled, appointment)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return d
}

func TestCancel_FreesSlotAndPublishes(t *testing.T) {
	repo := newFakeRepo()
	cache := &fakeCache{}
	events := &fakeEvents{}
	day := mustDate(t, "2026-09-10")
	repo.byID[5] = &domain.Appointment{ID: 5, Date: day, Status: domain.StatusPending}

	svc := NewService(repo, cache, events, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 5))
	assert.Equal(t, []int64{5}, repo.cancelled)
	require.Len(t, cache.invalidated, 1)
	assert.Equal(t, day, cache.invalidated[0])
	require.Len(t, events.cancelled, 1)
	assert.Equal(t, int64(5), events.cancelled[0].ID)
}

func TestCancel_RejectsNonPending(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, Status: domain.StatusCompleted}
	svc := NewService(repo, &fakeCache{}, &fakeEvents{}, nopLogger{})

	err := svc.Cancel(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeCache{}, &fakeEvents{}, nopLogger{})

	err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_PublishFailureIsNotFatal(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[5] = &domain.Appointment{ID: 5, Date: mustDate(t, "2026-09-10"), Status: domain.StatusPending}
	svc := NewService(repo, &fakeCache{}, &fakeEvents{err: assert.AnError}, nopLogger{})

	assert.NoError(t, svc.Cancel(context.Background(), 5))
	assert.Equal(t, []int64{5}, repo.cancelled)
}

func TestComplete_MarksCompleted(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[7] = &domain.Appointment{ID: 7, Status: domain.StatusPending}
	svc := NewService(repo, &fakeCache{}, &fakeEvents{}, nopLogger{})

	require.NoError(t, svc.Complete(context.Background(), 7))
	assert.Equal(t, domain.StatusCompleted, repo.statuses[7])
}

func TestComplete_RejectsCancelled(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[7] = &domain.Appointment{ID: 7, Status: domain.StatusCancelled}
	svc := NewService(repo, &fakeCache{}, &fakeEvents{}, nopLogger{})

	err := svc.Complete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrCannotComplete)
	assert.Empty(t, repo.statuses)
}

func TestBusySlots_SortedByStartTime(t *testing.T) {
	repo := newFakeRepo()
	repo.listed = []*domain.Appointment{
		{ID: 2, ClientID: 9, StartTime: types.TimeString("14:00"), Service: "Manicure"},
		{ID: 1, ClientID: 3, StartTime: types.TimeString("09:00"), Service: "Corte"},
	}
	svc := NewService(repo, &fakeCache{}, &fakeEvents{}, nopLogger{})

	resp, err := svc.BusySlots(context.Background(), mustDate(t, "2026-09-10"))
	require.NoError(t, err)

	assert.Equal(t, "2026-09-10", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "Corte", resp.Slots[0].Service)
	assert.Equal(t, "14:00", resp.Slots[1].StartTime)
}

func TestBusySlots_EmptyDay(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeCache{}, &fakeEvents{}, nopLogger{})

	resp, err := svc.BusySlots(context.Background(), mustDate(t, "2026-09-10"))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
