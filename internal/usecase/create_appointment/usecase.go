package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	clientRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/client"
)

// UseCase creates an appointment, checking the slot inside a serializable
// transaction so two requests cannot book the same interval.
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	slotCache       SlotCache
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	slotCache SlotCache,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		slotCache:       slotCache,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider overrides the time source. Used by tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute validates and stores the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, date=%s, time=%s, service=%q",
		req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime, req.Service)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	schedule, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	if err := validateSlot(req, schedule, now); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	var created *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.AppointmentsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}
		appointments, err := uc.appointmentRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load appointments: %v", err)
			return fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
		}

		if countOverlappingAppointments(req.StartTime, schedule.SlotDurationMinutes, appointments) > 0 {
			uc.logger.Warn("CreateAppointment: slot %s on %s already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:  req.ClientID,
			Date:      req.Date,
			StartTime: req.StartTime,
			Service:   req.Service,
			Price:     req.Price,
			Status:    domain.StatusPending,
			Notes:     req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.slotCache.Invalidate(req.Date)

	if err := uc.events.AppointmentCreated(ctx, created); err != nil {
		// The booking is already committed; a lost event must not fail it.
		uc.logger.Warn("CreateAppointment: failed to publish event for id=%d: %v", created.ID, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", created.ID)

	return &Response{Appointment: created}, nil
}
