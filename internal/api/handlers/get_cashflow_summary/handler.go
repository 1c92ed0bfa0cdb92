package get_cashflow_summary

import (
	"errors"
	"net/http"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow"
	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow/models"
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

// Handle GET /api/v1/cashflow/summary
// Query params: startDate, endDate, type (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListEntriesRequest{}
	query := r.URL.Query()

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /cashflow/summary - Invalid start date: %q", startStr)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /cashflow/summary - Invalid end date: %q", endStr)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.EndDate = &end
	}

	if entryType := query.Get("type"); entryType != "" {
		req.Type = &entryType
	}

	result, err := h.service.Summary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, cashflow.ErrInvalidInput):
			h.logger.Warn("GET /cashflow/summary - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /cashflow/summary - Failed to summarize: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cashflow/summary - Summary retrieved successfully: balance=%.2f", result.Balance)
	handlers.RespondJSON(w, http.StatusOK, result)
}
