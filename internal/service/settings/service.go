package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	settingsRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/settings"
	"github.com/rmarins/MEI-AgendaService/internal/service/settings/models"
)

// Service manages the professional's work schedule and merchant profile.
type Service struct {
	settingsRepo SettingsRepository
	slotCache    SlotCache
	logger       Logger
}

// NewService creates the settings service.
func NewService(settingsRepo SettingsRepository, slotCache SlotCache, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		slotCache:    slotCache,
		logger:       logger,
	}
}

// GetSchedule fetches the work schedule, falling back to the default one
// before the first save.
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching work schedule")

	schedule, err := s.settingsRepo.GetSchedule(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrScheduleNotFound) {
			s.logger.Info("GetSchedule: no schedule saved, using default")
			return models.FromDomainSchedule(domain.DefaultWorkSchedule(), true), nil
		}
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule, false), nil
}

// UpdateSchedule validates and saves the work schedule, then drops every
// cached slot grid.
func (s *Service) UpdateSchedule(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: saving schedule %d-%d, slot=%dmin, days=%v",
		req.StartHour, req.EndHour, req.SlotDurationMinutes, req.WorkDays)

	schedule := req.ToDomain()
	if err := schedule.Validate(); err != nil {
		s.logger.Warn("UpdateSchedule: invalid schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.SaveSchedule(ctx, schedule); err != nil {
		s.logger.Error("UpdateSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.slotCache.Purge()

	s.logger.Info("UpdateSchedule: schedule saved")
	return models.FromDomainSchedule(schedule, false), nil
}

// GetProfile fetches the merchant profile.
func (s *Service) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: fetching profile")

	profile, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrProfileNotFound) {
			s.logger.Warn("GetProfile: profile not configured")
			return nil, ErrProfileNotConfigured
		}
		s.logger.Error("GetProfile: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// UpdateProfile validates and saves the merchant profile.
func (s *Service) UpdateProfile(ctx context.Context, req *models.ProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateProfile: saving profile name=%q city=%q", req.Name, req.City)

	if err := req.Validate(); err != nil {
		s.logger.Warn("UpdateProfile: invalid profile: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	profile := req.ToDomain()
	if err := s.settingsRepo.SaveProfile(ctx, profile); err != nil {
		s.logger.Error("UpdateProfile: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: profile saved")
	return models.FromDomainProfile(profile), nil
}
