package update_profile

import (
	"errors"
	"net/http"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/settings"
	"github.com/rmarins/MEI-AgendaService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidProfile     = "dados do perfil inválidos"
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

// Handle PUT /api/v1/settings/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings/profile - Invalid profile: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		default:
			h.logger.Error("PUT /settings/profile - Failed to update profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/profile - Profile updated successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
