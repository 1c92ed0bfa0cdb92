package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	settingsRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/settings"
	"github.com/rmarins/MEI-AgendaService/internal/service/settings/models"
)

type fakeSettingsRepo struct {
	schedule *domain.WorkSchedule
	profile  *domain.Profile

	savedSchedules []*domain.WorkSchedule
	savedProfiles  []*domain.Profile
}

func (f *fakeSettingsRepo) GetSchedule(_ context.Context) (*domain.WorkSchedule, error) {
	if f.schedule == nil {
		return nil, settingsRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
}

func (f *fakeSettingsRepo) SaveSchedule(_ context.Context, schedule *domain.WorkSchedule) error {
	f.savedSchedules = append(f.savedSchedules, schedule)
	f.schedule = schedule
	return nil
}

func (f *fakeSettingsRepo) GetProfile(_ context.Context) (*domain.Profile, error) {
	if f.profile == nil {
		return nil, settingsRepo.ErrProfileNotFound
	}
	return f.profile, nil
}

func (f *fakeSettingsRepo) SaveProfile(_ context.Context, profile *domain.Profile) error {
	f.savedProfiles = append(f.savedProfiles, profile)
	f.profile = profile
	return nil
}

type fakeCache struct {
	purges int
}

func (f *fakeCache) Purge() { f.purges++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetSchedule_DefaultBeforeFirstSave(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, &fakeCache{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, domain.DefaultStartHour, resp.StartHour)
	assert.Equal(t, domain.DefaultEndHour, resp.EndHour)
}

func TestGetSchedule_SavedSchedule(t *testing.T) {
	repo := &fakeSettingsRepo{schedule: &domain.WorkSchedule{
		StartHour:           10,
		EndHour:             16,
		SlotDurationMinutes: 30,
		WorkDays:            []time.Weekday{time.Saturday},
	}}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)

	assert.False(t, resp.IsDefault)
	assert.Equal(t, 10, resp.StartHour)
	assert.Equal(t, []int{6}, resp.WorkDays)
}

func TestUpdateSchedule_PurgesSlotCache(t *testing.T) {
	repo := &fakeSettingsRepo{}
	cache := &fakeCache{}
	svc := NewService(repo, cache, nopLogger{})

	resp, err := svc.UpdateSchedule(context.Background(), &models.ScheduleRequest{
		StartHour:           9,
		EndHour:             17,
		SlotDurationMinutes: 30,
		WorkDays:            []int{1, 2, 3},
	})
	require.NoError(t, err)

	assert.False(t, resp.IsDefault)
	assert.Equal(t, 1, cache.purges)
	require.Len(t, repo.savedSchedules, 1)
}

func TestUpdateSchedule_InvalidRejected(t *testing.T) {
	cache := &fakeCache{}
	svc := NewService(&fakeSettingsRepo{}, cache, nopLogger{})

	// End before start never passes validation.
	_, err := svc.UpdateSchedule(context.Background(), &models.ScheduleRequest{
		StartHour:           18,
		EndHour:             8,
		SlotDurationMinutes: 30,
		WorkDays:            []int{1},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, cache.purges)
}

func TestGetProfile_NotConfigured(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, &fakeCache{}, nopLogger{})

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotConfigured)
}

func TestUpdateProfile_TrimsAndSaves(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	resp, err := svc.UpdateProfile(context.Background(), &models.ProfileRequest{
		Name:   "  Ana Souza  ",
		City:   "Sao Paulo",
		PixKey: "ana@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Souza", resp.Name)
	assert.True(t, resp.HasPixKey)
	require.Len(t, repo.savedProfiles, 1)
}

func TestUpdateProfile_EmptyNameRejected(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, &fakeCache{}, nopLogger{})

	_, err := svc.UpdateProfile(context.Background(), &models.ProfileRequest{City: "Recife"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
