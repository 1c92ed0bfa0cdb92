package get_profile

import (
	"errors"
	"net/http"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/settings"
)

const (
	msgNotConfigured = "perfil ainda não configurado"
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

// Handle GET /api/v1/settings/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetProfile(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrProfileNotConfigured):
			h.logger.Warn("GET /settings/profile - Profile not configured")
			handlers.RespondNotFound(w, msgNotConfigured)

		default:
			h.logger.Error("GET /settings/profile - Failed to get profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /settings/profile - Profile retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
