package cancel_invoice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rmarins/MEI-AgendaService/internal/api/handlers"
	"github.com/rmarins/MEI-AgendaService/internal/service/invoices"
)

const (
	msgInvalidInvoiceID = "ID de cobrança inválido"
	msgNotFound         = "cobrança não encontrada"
	msgCannotCancel     = "a cobrança não pode ser cancelada"
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

// Handle PATCH /api/v1/invoices/{invoiceId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	invoiceID, err := strconv.ParseInt(vars["invoiceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /invoices/{id}/cancel - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	err = h.service.Cancel(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvoiceNotFound):
			h.logger.Warn("PATCH /invoices/{id}/cancel - Invoice not found: invoice_id=%d", invoiceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, invoices.ErrCannotCancel):
			h.logger.Warn("PATCH /invoices/{id}/cancel - Cannot cancel: invoice_id=%d", invoiceID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /invoices/{id}/cancel - Failed to cancel invoice: invoice_id=%d, error=%v",
				invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /invoices/{id}/cancel - Invoice cancelled successfully: invoice_id=%d", invoiceID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
