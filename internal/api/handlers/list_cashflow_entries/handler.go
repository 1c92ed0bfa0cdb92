package list_cashflow_entries

import (
	"errors"
	"net/http"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow"
)

const (
	msgInvalidFilter = "filtros inválidos"
)

type Handler struct {
	service CashFlowService
	logger  Logger
}

func NewHandler(service CashFlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cashflow/entries
// Query params: startDate, endDate, type (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /cashflow/entries - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, cashflow.ErrInvalidInput):
			h.logger.Warn("GET /cashflow/entries - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /cashflow/entries - Failed to list entries: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cashflow/entries - Entries retrieved successfully: count=%d", len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
