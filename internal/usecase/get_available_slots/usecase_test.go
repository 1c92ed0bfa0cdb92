package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	schedule *domain.WorkSchedule
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.WorkSchedule, error) {
	return f.schedule, nil
}

type fakeSlotCache struct {
	stored map[string][]domain.AvailableSlot
}

func newFakeSlotCache() *fakeSlotCache {
	return &fakeSlotCache{stored: make(map[string][]domain.AvailableSlot)}
}

func (f *fakeSlotCache) Get(date time.Time) ([]domain.AvailableSlot, bool) {
	slots, ok := f.stored[date.Format(domain.DateFormat)]
	return slots, ok
}

func (f *fakeSlotCache) Store(date time.Time, slots []domain.AvailableSlot) {
	f.stored[date.Format(domain.DateFormat)] = slots
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(repo *fakeAppointmentRepo, schedule *domain.WorkSchedule, now time.Time) *UseCase {
	return NewUseCase(repo, &fakeScheduleRepo{schedule: schedule}, newFakeSlotCache(), nopLogger{}).
		WithTimeProvider(&fixedTime{now: now})
}

// mustDate builds a date at midnight UTC.
func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return d
}

func startTimes(slots []domain.AvailableSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestExecute_FullGridOnFutureWorkDay(t *testing.T) {
	schedule := &domain.WorkSchedule{
		StartHour:           9,
		EndHour:             11,
		SlotDurationMinutes: 30,
		WorkDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
	}

	// 2030-06-03 is a Monday.
	uc := newUseCase(&fakeAppointmentRepo{}, schedule, mustDate(t, "2026-09-01"))
	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2030-06-03")})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, startTimes(resp.Slots))
}

func TestExecute_EmptyOnNonWorkDay(t *testing.T) {
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             18,
		SlotDurationMinutes: 60,
		WorkDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}

	// 2030-06-01 is a Saturday.
	uc := newUseCase(&fakeAppointmentRepo{}, schedule, mustDate(t, "2026-09-01"))
	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2030-06-01")})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	day := mustDate(t, "2030-06-03") // Monday
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             10,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{time.Monday},
	}
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, Date: day, StartTime: types.TimeString("09:00"), Status: domain.StatusPending},
	}}

	uc := newUseCase(repo, schedule, mustDate(t, "2026-09-01"))
	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00"}, startTimes(resp.Slots))
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	day := mustDate(t, "2030-06-03")
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             10,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{time.Monday},
	}
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, Date: day, StartTime: types.TimeString("09:00"), Status: domain.StatusCancelled},
	}}

	uc := newUseCase(repo, schedule, mustDate(t, "2026-09-01"))
	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "09:00"}, startTimes(resp.Slots))
}

func TestExecute_TodayDropsStartedSlots(t *testing.T) {
	now := time.Date(2030, 6, 3, 9, 0, 0, 0, time.UTC) // Monday 09:00
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             11,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{time.Monday},
	}

	uc := newUseCase(&fakeAppointmentRepo{}, schedule, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: now})
	require.NoError(t, err)

	// 08:00 already passed and 09:00 starts exactly now; both are gone.
	assert.Equal(t, []string{"10:00"}, startTimes(resp.Slots))
}

func TestExecute_PastDateIsEmpty(t *testing.T) {
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             10,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{time.Monday},
	}

	uc := newUseCase(&fakeAppointmentRepo{}, schedule, mustDate(t, "2030-06-10"))
	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2030-06-03")})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_FutureDayServedFromCache(t *testing.T) {
	day := mustDate(t, "2030-06-03")
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             10,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{time.Monday},
	}
	cache := newFakeSlotCache()
	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(repo, &fakeScheduleRepo{schedule: schedule}, cache, nopLogger{}).
		WithTimeProvider(&fixedTime{now: mustDate(t, "2026-09-01")})

	first, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	require.Len(t, cache.stored, 1)

	// New booking appears but the cache was not invalidated: the cached grid
	// is returned as-is.
	repo.appointments = []*domain.Appointment{
		{ID: 1, Date: day, StartTime: types.TimeString("08:00"), Status: domain.StatusPending},
	}
	second, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	assert.Equal(t, first.Slots, second.Slots)
}

func TestGenerateTimeSlots_MinuteCounterResetsEachHour(t *testing.T) {
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             10,
		SlotDurationMinutes: 45,
	}

	slots := generateTimeSlots(schedule)

	got := make([]string, len(slots))
	for i, s := range slots {
		got[i] = s.String()
	}
	// 45 does not divide 60: the grid restarts at :00 of every hour instead
	// of accumulating across the boundary.
	assert.Equal(t, []string{"08:00", "08:45", "09:00", "09:45"}, got)
}

func TestIsSlotBusy_TouchingIntervalsAreFree(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: types.TimeString("10:00"), Status: domain.StatusPending},
	}

	assert.False(t, isSlotBusy(types.TimeString("09:00"), 60, appointments), "ends where the appointment starts")
	assert.False(t, isSlotBusy(types.TimeString("11:00"), 60, appointments), "starts where the appointment ends")
	assert.True(t, isSlotBusy(types.TimeString("09:30"), 60, appointments))
	assert.True(t, isSlotBusy(types.TimeString("10:30"), 60, appointments))
}
