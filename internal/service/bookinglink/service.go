package bookinglink

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	settingsRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/settings"
	"github.com/rmarins/MEI-AgendaService/internal/service/bookinglink/models"
)

// publicDays is how many upcoming work days the public page shows.
const publicDays = 7

// tokenPayload is the JSON carried inside the base64 token. The link is a
// convenience, not a credential: it only exposes what the public page shows
// anyway.
type tokenPayload struct {
	ID               string                `json:"id"`
	ProfessionalName string                `json:"professionalName"`
	Schedule         models.PublicSchedule `json:"schedule"`
	GeneratedAt      string                `json:"generatedAt"`
}

// Service issues and resolves shareable booking links.
type Service struct {
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the booking link service.
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider replaces the time source. Test hook.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Generate builds the shareable link token from the current schedule and
// profile.
func (s *Service) Generate(ctx context.Context) (*models.LinkResponse, error) {
	s.logger.Info("Generate: building booking link")

	schedule, err := s.settingsRepo.GetSchedule(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrScheduleNotFound) {
			s.logger.Error("Generate: repository error fetching schedule: %v", err)
			return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
		}
		schedule = domain.DefaultWorkSchedule()
	}

	name := ""
	profile, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrProfileNotFound) {
			s.logger.Error("Generate: repository error fetching profile: %v", err)
			return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
		}
	} else {
		name = profile.Name
	}

	payload := tokenPayload{
		ID:               uuid.NewString(),
		ProfessionalName: name,
		Schedule:         toPublicSchedule(schedule),
		GeneratedAt:      s.timeProvider.Now().UTC().Format(time.RFC3339),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: Generate - marshal payload: %v", ErrInternal, err)
	}

	token := base64.RawURLEncoding.EncodeToString(raw)

	s.logger.Info("Generate: built booking link id=%s", payload.ID)
	return &models.LinkResponse{
		Token: token,
		Path:  "/public/booking/" + token,
	}, nil
}

// Resolve decodes a link token and builds the public booking page data: the
// schedule and the slot grids of the next work days. The public page has no
// appointment knowledge; availability is confirmed when the booking is made.
func (s *Service) Resolve(ctx context.Context, token string) (*models.PublicBookingResponse, error) {
	s.logger.Info("Resolve: resolving booking link")

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		s.logger.Warn("Resolve: token is not base64: %v", err)
		return nil, ErrInvalidToken
	}

	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.Warn("Resolve: token payload is not valid JSON: %v", err)
		return nil, ErrInvalidToken
	}

	schedule := &domain.WorkSchedule{
		StartHour:           payload.Schedule.StartHour,
		EndHour:             payload.Schedule.EndHour,
		SlotDurationMinutes: payload.Schedule.SlotDurationMinutes,
	}
	for _, d := range payload.Schedule.WorkDays {
		schedule.WorkDays = append(schedule.WorkDays, time.Weekday(d))
	}
	if err := schedule.Validate(); err != nil {
		s.logger.Warn("Resolve: token carries an invalid schedule: %v", err)
		return nil, ErrInvalidToken
	}

	resp := &models.PublicBookingResponse{
		ProfessionalName: payload.ProfessionalName,
		Schedule:         payload.Schedule,
		Days:             make([]models.PublicDay, 0, publicDays),
	}

	now := s.timeProvider.Now()
	for daysAhead := 0; len(resp.Days) < publicDays && daysAhead < domain.SuggestionHorizonDays; daysAhead++ {
		day := now.AddDate(0, 0, daysAhead)
		if !schedule.IsWorkDay(day.Weekday()) {
			continue
		}

		resp.Days = append(resp.Days, models.PublicDay{
			Date:  day.Format(domain.DateFormat),
			Slots: generateTimeSlots(schedule),
		})
	}

	return resp, nil
}

func toPublicSchedule(s *domain.WorkSchedule) models.PublicSchedule {
	workDays := make([]int, 0, len(s.WorkDays))
	for _, d := range s.WorkDays {
		workDays = append(workDays, int(d))
	}

	return models.PublicSchedule{
		StartHour:           s.StartHour,
		EndHour:             s.EndHour,
		SlotDurationMinutes: s.SlotDurationMinutes,
		WorkDays:            workDays,
	}
}

// generateTimeSlots builds the day grid. The minute counter restarts at each
// hour, matching the agenda's slot generation.
func generateTimeSlots(schedule *domain.WorkSchedule) []string {
	slots := make([]string, 0)
	for hour := schedule.StartHour; hour < schedule.EndHour; hour++ {
		for minute := 0; minute < 60; minute += schedule.SlotDurationMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}
