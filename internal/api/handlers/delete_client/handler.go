package delete_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/clients"
)

const (
	msgInvalidClientID   = "ID de cliente inválido"
	msgNotFound          = "cliente não encontrado"
	msgHasAppointments   = "cliente possui agendamentos e não pode ser removido"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	err = h.service.Delete(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("DELETE /clients/{id} - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clients.ErrClientHasAppointments):
			h.logger.Warn("DELETE /clients/{id} - Client has appointments: client_id=%d", clientID)
			handlers.RespondConflict(w, msgHasAppointments)

		default:
			h.logger.Error("DELETE /clients/{id} - Failed to delete client: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted successfully: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
