package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	appointmentRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/appointment"
	"github.com/rmarins/MEI-AgendaService/internal/service/appointments/models"
)

// Service manages the appointment agenda beyond slot booking: reads,
// cancellation and completion.
type Service struct {
	appointmentRepo AppointmentRepository
	slotCache       SlotCache
	events          EventPublisher
	logger          Logger
}

// NewService creates the appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	slotCache SlotCache,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		slotCache:       slotCache,
		events:          events,
		logger:          logger,
	}
}

// GetByID fetches one appointment.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List fetches appointments with optional filtering by client, period and
// status. Cancelled appointments are excluded unless IncludeInactive is set.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, client=%v, status=%v", req.ClientID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel cancels a pending appointment, frees its slot and notifies
// listeners. A publish failure does not fail the cancellation.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.slotCache.Invalidate(appointment.Date)

	if err := s.events.AppointmentCancelled(ctx, appointment); err != nil {
		s.logger.Warn("Cancel: failed to publish cancellation of appointment id=%d: %v", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// Complete marks a pending appointment as completed.
func (s *Service) Complete(ctx context.Context, id int64) error {
	s.logger.Info("Complete: completing appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", id, appointment.Status)
		return ErrCannotComplete
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed appointment id=%d", id)
	return nil
}

// BusySlots projects the active appointments of one day as occupied
// intervals, ordered by start time.
func (s *Service) BusySlots(ctx context.Context, date time.Time) (*models.BusySlotsResponse, error) {
	s.logger.Info("BusySlots: fetching agenda for date=%s", date.Format(domain.DateFormat))

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		s.logger.Error("BusySlots: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: BusySlots - repository error: %v", ErrInternal, err)
	}

	resp := &models.BusySlotsResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: make([]models.BusySlotResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		resp.Slots = append(resp.Slots, models.BusySlotResponse{
			StartTime: appointment.StartTime.String(),
			Service:   appointment.Service,
			ClientID:  appointment.ClientID,
		})
	}

	sort.Slice(resp.Slots, func(i, j int) bool {
		return resp.Slots[i].StartTime < resp.Slots[j].StartTime
	})

	return resp, nil
}
