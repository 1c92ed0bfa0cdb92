package update_schedule

import (
	"errors"
	"net/http"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/settings"
	"github.com/rmarins/MEI-AgendaService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidSchedule    = "horário de atendimento inválido"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSchedule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings/schedule - Invalid schedule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /settings/schedule - Failed to update schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/schedule - Schedule updated successfully: %d-%d, slot=%dmin",
		result.StartHour, result.EndHour, result.SlotDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
