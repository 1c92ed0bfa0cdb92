package suggest_slots

import (
	"context"
	"fmt"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

// UseCase finds the soonest free slots, scanning forward day by day from
// today up to the suggestion horizon.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider overrides the time source. Used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute collects up to req.Count suggestions in chronological order. Days
// are visited in sequence and every free slot of a day is taken before moving
// to the next one. Returns fewer entries when the horizon has no more room;
// never an error for a fully booked agenda.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	today := startOfDay(now)

	schedule, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	horizonEnd := today.AddDate(0, 0, domain.SuggestionHorizonDays-1)
	filter := domain.AppointmentsFilter{
		StartDate: &today,
		EndDate:   &horizonEnd,
	}
	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}
	byDay := groupByDay(appointments)

	suggestions := make([]domain.SuggestedSlot, 0, req.Count)

	for daysAhead := 0; daysAhead < domain.SuggestionHorizonDays && len(suggestions) < req.Count; daysAhead++ {
		date := today.AddDate(0, 0, daysAhead)
		if !schedule.IsWorkDay(date.Weekday()) {
			continue
		}

		dayAppointments := byDay[date.Format(domain.DateFormat)]
		label := dayLabel(daysAhead, date)
		currentTime := types.NewTimeString(now)

		for _, slot := range generateTimeSlots(schedule) {
			if len(suggestions) >= req.Count {
				break
			}
			// Today only offers slots that have not started yet.
			if daysAhead == 0 && !slot.IsAfter(currentTime) {
				continue
			}
			if isSlotBusy(slot, schedule.SlotDurationMinutes, dayAppointments) {
				continue
			}
			suggestions = append(suggestions, domain.SuggestedSlot{
				Date:      date,
				StartTime: slot,
				Label:     label,
			})
		}
	}

	uc.logger.Info("SuggestSlots: %d suggestions collected (requested %d)", len(suggestions), req.Count)

	return &Response{Slots: suggestions}, nil
}
