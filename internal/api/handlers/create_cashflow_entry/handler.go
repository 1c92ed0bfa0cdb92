package create_cashflow_entry

import (
	"errors"
	"net/http"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidEntry       = "dados do lançamento inválidos"
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

// Handle POST /api/v1/cashflow/entries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cashflow/entries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /cashflow/entries - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateEntry(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, cashflow.ErrInvalidInput):
			h.logger.Warn("POST /cashflow/entries - Invalid entry data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEntry)

		default:
			h.logger.Error("POST /cashflow/entries - Failed to create entry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cashflow/entries - Entry created successfully: entry_id=%d, type=%s", result.ID, result.Type)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
