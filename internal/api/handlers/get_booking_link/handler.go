package get_booking_link

import (
	"net/http"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
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

// Handle GET /api/v1/booking-link
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Generate(r.Context())
	if err != nil {
		h.logger.Error("GET /booking-link - Failed to generate link: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-link - Link generated successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
