package create_invoice

import (
	"errors"
	"net/http"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/invoices"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDueDate     = "data de vencimento inválida, esperado YYYY-MM-DD"
	msgInvalidInvoice     = "dados da cobrança inválidos"
	msgClientNotFound     = "cliente não encontrado"
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

// Handle POST /api/v1/invoices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invoices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /invoices - Invalid due date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDueDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvalidInput):
			h.logger.Warn("POST /invoices - Invalid invoice data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInvoice)

		case errors.Is(err, invoices.ErrClientNotFound):
			h.logger.Warn("POST /invoices - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("POST /invoices - Failed to create invoice: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invoices - Invoice created successfully: invoice_id=%d, number=%s", result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
