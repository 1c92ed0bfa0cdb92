package list_invoices

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/invoices"
	"github.com/rmarins/MEI-AgendaService/internal/service/invoices/models"
)

const (
	msgInvalidFilter = "filtros inválidos"
)

type Handler struct {
	service InvoiceService
	logger  Logger
}

func NewHandler(service InvoiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/invoices
// Query params: clientId, status (both optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListInvoicesRequest{}

	if clientIDStr := r.URL.Query().Get("clientId"); clientIDStr != "" {
		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /invoices - Invalid client ID: %q", clientIDStr)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.ClientID = &clientID
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvalidInput):
			h.logger.Warn("GET /invoices - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /invoices - Failed to list invoices: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /invoices - Invoices retrieved successfully: count=%d", len(result.Invoices))
	handlers.RespondJSON(w, http.StatusOK, result)
}
