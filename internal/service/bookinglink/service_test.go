package bookinglink

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	settingsRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/settings"
)

type fakeSettingsRepo struct {
	schedule *domain.WorkSchedule
	profile  *domain.Profile
}

func (f *fakeSettingsRepo) GetSchedule(context.Context) (*domain.WorkSchedule, error) {
	if f.schedule == nil {
		return nil, settingsRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
}

func (f *fakeSettingsRepo) GetProfile(context.Context) (*domain.Profile, error) {
	if f.profile == nil {
		return nil, settingsRepo.ErrProfileNotFound
	}
	return f.profile, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGenerateAndResolve_RoundTrip(t *testing.T) {
	repo := &fakeSettingsRepo{
		schedule: &domain.WorkSchedule{
			StartHour:           9,
			EndHour:             11,
			SlotDurationMinutes: 30,
			WorkDays:            []time.Weekday{time.Monday, time.Wednesday},
		},
		profile: &domain.Profile{Name: "Maria Silva", City: "Sao Paulo"},
	}

	// Monday.
	now := time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC)
	svc := NewService(repo, nopLogger{}).WithTimeProvider(fixedTime{now: now})

	link, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/public/booking/"+link.Token, link.Path)

	resolved, err := svc.Resolve(context.Background(), link.Token)
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva", resolved.ProfessionalName)
	assert.Equal(t, 9, resolved.Schedule.StartHour)
	assert.Equal(t, []int{1, 3}, resolved.Schedule.WorkDays)

	require.NotEmpty(t, resolved.Days)
	assert.Equal(t, "2030-06-03", resolved.Days[0].Date)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, resolved.Days[0].Slots)

	// Only Mondays and Wednesdays inside the horizon.
	for _, day := range resolved.Days {
		parsed, err := time.Parse(domain.DateFormat, day.Date)
		require.NoError(t, err)
		assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday}, parsed.Weekday())
	}
}

func TestGenerate_FallsBackToDefaultSchedule(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	link, err := svc.Generate(context.Background())
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), link.Token)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultStartHour, resolved.Schedule.StartHour)
	assert.Equal(t, domain.DefaultEndHour, resolved.Schedule.EndHour)
	assert.Empty(t, resolved.ProfessionalName)
}

func TestResolve_RejectsGarbage(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	_, err := svc.Resolve(context.Background(), "not-a-token!!!")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Valid base64 but not a link payload.
	_, err = svc.Resolve(context.Background(), "aGVsbG8")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
