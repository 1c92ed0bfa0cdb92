package create_appointment

import (
	"errors"
	"net/http"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	createAppointment "github.com/rmarins/MEI-AgendaService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidDateOrTime   = "data ou horário inválido, esperado YYYY-MM-DD e HH:MM"
	msgClientNotFound      = "cliente não encontrado"
	msgDayOff              = "a data escolhida não é um dia de atendimento"
	msgOutsideWorkingHours = "horário fora do expediente"
	msgDateInPast          = "a data escolhida já passou"
	msgSlotAlreadyStarted  = "o horário escolhido já começou"
	msgSlotTaken           = "horário já reservado"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrDayOff):
			h.logger.Warn("POST /appointments - Day off: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDayOff)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: date=%s, start_time=%s",
				req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrSlotAlreadyStarted):
			h.logger.Warn("POST /appointments - Slot already started: date=%s, start_time=%s",
				req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotAlreadyStarted)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, start_time=%s",
				req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, error=%v",
				req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, date=%s, start_time=%s",
		result.Appointment.ID, req.ClientID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
