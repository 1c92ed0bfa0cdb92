package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	clientRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/client"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	stored := *appointment
	stored.ID = f.nextID
	f.appointments = append(f.appointments, &stored)
	return &stored, nil
}

type fakeClientRepo struct {
	clients map[int64]*domain.Client
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return client, nil
}

type fakeScheduleRepo struct {
	schedule *domain.WorkSchedule
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.WorkSchedule, error) {
	return f.schedule, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeSlotCache struct {
	invalidated []time.Time
}

func (f *fakeSlotCache) Invalidate(date time.Time) {
	f.invalidated = append(f.invalidated, date)
}

type fakeEvents struct {
	created []*domain.Appointment
	err     error
}

func (f *fakeEvents) AppointmentCreated(_ context.Context, appointment *domain.Appointment) error {
	f.created = append(f.created, appointment)
	return f.err
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc     *UseCase
	repo   *fakeAppointmentRepo
	tx     *fakeTxManager
	cache  *fakeSlotCache
	events *fakeEvents
}

func newFixture(schedule *domain.WorkSchedule, now time.Time) *fixture {
	f := &fixture{
		repo:   &fakeAppointmentRepo{},
		tx:     &fakeTxManager{},
		cache:  &fakeSlotCache{},
		events: &fakeEvents{},
	}
	clients := &fakeClientRepo{clients: map[int64]*domain.Client{
		1: {ID: 1, Name: "Maria Silva"},
	}}
	f.uc = NewUseCase(f.repo, clients, &fakeScheduleRepo{schedule: schedule}, f.tx, f.cache, f.events, nopLogger{}).
		WithTimeProvider(&fixedTime{now: now})
	return f
}

func mondaySchedule() *domain.WorkSchedule {
	return &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             12,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{time.Monday},
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return d
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		ClientID:  1,
		Date:      mustDate(t, "2030-06-03"), // Monday
		StartTime: types.TimeString("09:00"),
		Service:   "Corte de cabelo",
		Price:     50,
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2026-09-01"))

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Appointment.ID)
	assert.Equal(t, domain.StatusPending, resp.Appointment.Status)
	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.cache.invalidated, 1)
	assert.Equal(t, "2030-06-03", f.cache.invalidated[0].Format(domain.DateFormat))
	require.Len(t, f.events.created, 1)
	assert.Equal(t, resp.Appointment.ID, f.events.created[0].ID)
}

func TestExecute_UnknownClientRejected(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2026-09-01"))

	req := validRequest(t)
	req.ClientID = 42
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, f.repo.appointments)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2026-09-01"))
	f.repo.appointments = []*domain.Appointment{
		{ID: 7, Date: mustDate(t, "2030-06-03"), StartTime: types.TimeString("09:00"), Status: domain.StatusPending},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.cache.invalidated)
	assert.Empty(t, f.events.created)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2026-09-01"))
	f.repo.appointments = []*domain.Appointment{
		{ID: 7, Date: mustDate(t, "2030-06-03"), StartTime: types.TimeString("09:00"), Status: domain.StatusCancelled},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Appointment.Status)
}

func TestExecute_OverlappingSlotRejected(t *testing.T) {
	schedule := mondaySchedule()
	schedule.SlotDurationMinutes = 45
	f := newFixture(schedule, mustDate(t, "2026-09-01"))
	f.repo.appointments = []*domain.Appointment{
		{ID: 7, Date: mustDate(t, "2030-06-03"), StartTime: types.TimeString("09:00"), Status: domain.StatusPending},
	}

	// 08:45 + 45min overlaps the 09:00 appointment.
	req := validRequest(t)
	req.StartTime = types.TimeString("08:45")
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_DayOff(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2026-09-01"))

	req := validRequest(t)
	req.Date = mustDate(t, "2030-06-04") // Tuesday
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayOff)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2026-09-01"))

	req := validRequest(t)
	req.StartTime = types.TimeString("09:15")
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2030-06-10"))

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TodayStartedSlotRejected(t *testing.T) {
	now := time.Date(2030, 6, 3, 9, 30, 0, 0, time.UTC) // Monday 09:30
	f := newFixture(mondaySchedule(), now)

	req := validRequest(t)
	req.Date = now
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotAlreadyStarted)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2026-09-01"))

	cases := map[string]func(*Request){
		"missing client":  func(r *Request) { r.ClientID = 0 },
		"missing service": func(r *Request) { r.Service = "" },
		"negative price":  func(r *Request) { r.Price = -1 },
		"bad start time":  func(r *Request) { r.StartTime = types.TimeString("25:99") },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest(t)
			mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_EventFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture(mondaySchedule(), mustDate(t, "2026-09-01"))
	f.events.err = assert.AnError

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.NotZero(t, resp.Appointment.ID)
}
