package suggest_slots

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

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(repo *fakeAppointmentRepo, schedule *domain.WorkSchedule, now time.Time) *UseCase {
	return NewUseCase(repo, &fakeScheduleRepo{schedule: schedule}, nopLogger{}).
		WithTimeProvider(&fixedTime{now: now})
}

func everyDay() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

func TestExecute_CapsAtRequestedCount(t *testing.T) {
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             18,
		SlotDurationMinutes: 60,
		WorkDays:            everyDay(),
	}

	now := time.Date(2030, 6, 3, 7, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeAppointmentRepo{}, schedule, now)

	resp, err := uc.Execute(context.Background(), &Request{Count: 5})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 5)
	// All five fit today, before the clock reached any of them.
	for _, s := range resp.Slots {
		assert.Equal(t, "Hoje", s.Label)
	}
	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
}

func TestExecute_EmptyWithoutWorkDays(t *testing.T) {
	schedule := &domain.WorkSchedule{
		StartHour:           8,
		EndHour:             18,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{},
	}

	uc := newUseCase(&fakeAppointmentRepo{}, schedule, time.Date(2030, 6, 3, 7, 0, 0, 0, time.UTC))
	resp, err := uc.Execute(context.Background(), &Request{Count: 5})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_SkipsToNextWorkDay(t *testing.T) {
	// Monday evening: today's grid is exhausted, Tuesday is a day off.
	now := time.Date(2030, 6, 3, 20, 0, 0, 0, time.UTC)
	schedule := &domain.WorkSchedule{
		StartHour:           9,
		EndHour:             11,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{time.Monday, time.Wednesday},
	}

	uc := newUseCase(&fakeAppointmentRepo{}, schedule, now)
	resp, err := uc.Execute(context.Background(), &Request{Count: 3})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	// Wednesday 2030-06-05 gets both slots, then Monday 2030-06-10.
	assert.Equal(t, "2030-06-05", resp.Slots[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "Qua, 5 Jun", resp.Slots[0].Label)
	assert.Equal(t, "2030-06-05", resp.Slots[1].Date.Format(domain.DateFormat))
	assert.Equal(t, "2030-06-10", resp.Slots[2].Date.Format(domain.DateFormat))
	assert.Equal(t, "Seg, 10 Jun", resp.Slots[2].Label)
}

func TestExecute_TomorrowLabel(t *testing.T) {
	now := time.Date(2030, 6, 3, 23, 0, 0, 0, time.UTC) // Monday night
	schedule := &domain.WorkSchedule{
		StartHour:           9,
		EndHour:             10,
		SlotDurationMinutes: 60,
		WorkDays:            everyDay(),
	}

	uc := newUseCase(&fakeAppointmentRepo{}, schedule, now)
	resp, err := uc.Execute(context.Background(), &Request{Count: 1})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "Amanhã", resp.Slots[0].Label)
	assert.Equal(t, "2030-06-04", resp.Slots[0].Date.Format(domain.DateFormat))
}

func TestExecute_BookedSlotsSkipped(t *testing.T) {
	now := time.Date(2030, 6, 3, 7, 0, 0, 0, time.UTC) // Monday morning
	today := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)
	schedule := &domain.WorkSchedule{
		StartHour:           9,
		EndHour:             11,
		SlotDurationMinutes: 60,
		WorkDays:            everyDay(),
	}
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, Date: today, StartTime: types.TimeString("09:00"), Status: domain.StatusPending},
	}}

	uc := newUseCase(repo, schedule, now)
	resp, err := uc.Execute(context.Background(), &Request{Count: 2})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "Hoje", resp.Slots[0].Label)
	assert.Equal(t, "09:00", resp.Slots[1].StartTime.String())
	assert.Equal(t, "Amanhã", resp.Slots[1].Label)
}

func TestExecute_HorizonIsFourteenDays(t *testing.T) {
	// Work day beyond the horizon only: today is Monday, the single work day
	// is 21 days away in the weekly cycle pattern used here.
	now := time.Date(2030, 6, 3, 7, 0, 0, 0, time.UTC)
	schedule := &domain.WorkSchedule{
		StartHour:           9,
		EndHour:             10,
		SlotDurationMinutes: 60,
		WorkDays:            []time.Weekday{time.Monday},
	}

	uc := newUseCase(&fakeAppointmentRepo{}, schedule, now)
	resp, err := uc.Execute(context.Background(), &Request{Count: 100})
	require.NoError(t, err)

	// Mondays within [today, today+13]: Jun 3 and Jun 10 only.
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "2030-06-03", resp.Slots[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2030-06-10", resp.Slots[1].Date.Format(domain.DateFormat))
}

func TestExecute_RejectsNonPositiveCount(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, domain.DefaultWorkSchedule(), time.Now())

	_, err := uc.Execute(context.Background(), &Request{Count: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
