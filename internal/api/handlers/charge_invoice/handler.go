package charge_invoice

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
	msgCannotCharge     = "a cobrança não pode ser emitida"
	msgNoPixKey         = "configure sua chave PIX no perfil antes de emitir cobranças"
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

// Handle POST /api/v1/invoices/{invoiceId}/charge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	invoiceID, err := strconv.ParseInt(vars["invoiceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /invoices/{id}/charge - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	result, err := h.service.GenerateCharge(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvoiceNotFound):
			h.logger.Warn("POST /invoices/{id}/charge - Invoice not found: invoice_id=%d", invoiceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, invoices.ErrCannotCharge):
			h.logger.Warn("POST /invoices/{id}/charge - Cannot charge: invoice_id=%d", invoiceID)
			handlers.RespondBadRequest(w, msgCannotCharge)

		case errors.Is(err, invoices.ErrNoPixKey):
			h.logger.Warn("POST /invoices/{id}/charge - No pix key configured: invoice_id=%d", invoiceID)
			handlers.RespondBadRequest(w, msgNoPixKey)

		default:
			h.logger.Error("POST /invoices/{id}/charge - Failed to generate charge: invoice_id=%d, error=%v",
				invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invoices/{id}/charge - Charge generated successfully: invoice_id=%d, number=%s",
		invoiceID, result.Number)
	handlers.RespondJSON(w, http.StatusOK, result)
}
