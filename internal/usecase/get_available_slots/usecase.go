package get_available_slots

import (
	"context"
	"fmt"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// UseCase computes the free slots of one day from the work schedule and the
// day's active appointments.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	slotCache       SlotCache
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	slotCache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		slotCache:       slotCache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider overrides the time source. Used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute computes the available slots of req.Date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	isToday := isSameDay(req.Date, now)

	schedule, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	// Non-work days and past days have nothing available; not an error.
	if !schedule.IsWorkDay(req.Date.Weekday()) || isDateInPast(req.Date, now) {
		return &Response{Date: req.Date, Slots: []domain.AvailableSlot{}}, nil
	}

	// Today's availability shifts with the clock, so only future days are
	// served from cache.
	if !isToday {
		if cached, ok := uc.slotCache.Get(req.Date); ok {
			return &Response{Date: req.Date, Slots: cached}, nil
		}
	}

	timeSlots := generateTimeSlots(schedule)
	if isToday {
		timeSlots = filterPastSlots(timeSlots, now)
	}

	filter := domain.AppointmentsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}
	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	slots := make([]domain.AvailableSlot, 0, len(timeSlots))
	for _, slot := range timeSlots {
		if isSlotBusy(slot, schedule.SlotDurationMinutes, appointments) {
			continue
		}
		slots = append(slots, domain.AvailableSlot{
			StartTime:       slot,
			DurationMinutes: schedule.SlotDurationMinutes,
		})
	}

	if !isToday {
		uc.slotCache.Store(req.Date, slots)
	}

	uc.logger.Info("GetAvailableSlots: %d free slots on %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: slots}, nil
}
