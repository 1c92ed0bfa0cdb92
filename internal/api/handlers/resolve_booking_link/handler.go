package resolve_booking_link

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/bookinglink"
)

const (
	msgInvalidToken = "link de agendamento inválido"
)

type Handler struct {
	service BookingLinkService
	logger  Logger
}

func NewHandler(service BookingLinkService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /public/booking/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	result, err := h.service.Resolve(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookinglink.ErrInvalidToken):
			h.logger.Warn("GET /public/booking/{token} - Invalid token")
			handlers.RespondNotFound(w, msgInvalidToken)

		default:
			h.logger.Error("GET /public/booking/{token} - Failed to resolve link: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /public/booking/{token} - Link resolved successfully: days_count=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
