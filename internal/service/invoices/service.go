package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	clientRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/client"
	invoiceRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/invoice"
	settingsRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/settings"
	"github.com/rmarins/MEI-AgendaService/internal/integrations/whatsapp"
	"github.com/rmarins/MEI-AgendaService/internal/pix"
	"github.com/rmarins/MEI-AgendaService/internal/service/invoices/models"
)

// Service manages invoices and their PIX charges.
type Service struct {
	invoiceRepo  InvoiceRepository
	clientRepo   ClientRepository
	profileRepo  ProfileRepository
	cashFlowRepo CashFlowRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService creates the invoices service.
func NewService(
	invoiceRepo InvoiceRepository,
	clientRepo ClientRepository,
	profileRepo ProfileRepository,
	cashFlowRepo CashFlowRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		profileRepo:  profileRepo,
		cashFlowRepo: cashFlowRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create opens a draft invoice for a client.
func (s *Service) Create(ctx context.Context, req *models.CreateInvoiceRequest) (*models.InvoiceResponse, error) {
	s.logger.Info("Create: creating invoice for client=%d, amount=%.2f", req.ClientID, req.Amount)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: invalid invoice payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Create: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Create: repository error for client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	invoice, err := s.invoiceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created invoice id=%d number=%s", invoice.ID, invoice.Number)
	return models.FromDomainInvoice(invoice), nil
}

// GetByID fetches one invoice.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.InvoiceResponse, error) {
	s.logger.Info("GetByID: fetching invoice id=%d", id)

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("GetByID: invoice id=%d not found", id)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("GetByID: repository error for invoice id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInvoice(invoice), nil
}

// List fetches invoices, newest first.
func (s *Service) List(ctx context.Context, req *models.ListInvoicesRequest) (*models.InvoiceListResponse, error) {
	s.logger.Info("List: fetching invoices, client=%v, status=%v", req.ClientID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	invoices, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d invoices", len(invoices))
	return models.FromDomainInvoiceList(invoices), nil
}

// GenerateCharge builds the PIX charge of an invoice from the merchant
// profile: copy-and-paste payload, QR code URL and a WhatsApp message link
// when the client has a phone. Charging a draft moves it to issued.
func (s *Service) GenerateCharge(ctx context.Context, id int64) (*models.ChargeResponse, error) {
	s.logger.Info("GenerateCharge: generating charge for invoice id=%d", id)

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("GenerateCharge: invoice id=%d not found", id)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("GenerateCharge: repository error for invoice id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GenerateCharge - repository error: %v", ErrInternal, err)
	}

	if !invoice.CanBeIssued() {
		s.logger.Warn("GenerateCharge: invoice id=%d cannot be charged, status=%s", id, invoice.Status)
		return nil, ErrCannotCharge
	}

	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrProfileNotFound) {
			s.logger.Warn("GenerateCharge: profile not configured")
			return nil, ErrNoPixKey
		}
		s.logger.Error("GenerateCharge: repository error fetching profile: %v", err)
		return nil, fmt.Errorf("%w: GenerateCharge - repository error: %v", ErrInternal, err)
	}
	if !profile.HasPixKey() {
		s.logger.Warn("GenerateCharge: profile has no pix key")
		return nil, ErrNoPixKey
	}

	payload := pix.Encode(profile.PixKey, profile.Name, profile.City, invoice.Amount, invoice.Number)

	resp := &models.ChargeResponse{
		InvoiceID:  invoice.ID,
		Number:     invoice.Number,
		Amount:     invoice.Amount,
		PixPayload: payload,
		QRCodeURL:  pix.QRCodeURL(payload),
	}

	client, err := s.clientRepo.GetByID(ctx, invoice.ClientID)
	if err != nil {
		s.logger.Warn("GenerateCharge: could not fetch client id=%d for whatsapp link: %v", invoice.ClientID, err)
	} else if client.Phone != nil {
		message := fmt.Sprintf(
			"Olá, %s! Segue a cobrança %s no valor de R$ %.2f.\nPIX copia e cola:\n%s",
			client.Name, invoice.Number, invoice.Amount, payload,
		)
		link, linkErr := whatsapp.ChargeLink(*client.Phone, message)
		if linkErr == nil {
			resp.WhatsAppLink = &link
		}
	}

	if invoice.Status == domain.InvoiceStatusDraft {
		if err := s.invoiceRepo.UpdateStatus(ctx, invoice.ID, domain.InvoiceStatusIssued); err != nil {
			s.logger.Error("GenerateCharge: failed to issue invoice id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: GenerateCharge - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("GenerateCharge: generated charge for invoice id=%d number=%s", invoice.ID, invoice.Number)
	return resp, nil
}

// MarkPaid marks an invoice as paid and records the matching cash flow
// income entry in one transaction.
func (s *Service) MarkPaid(ctx context.Context, id int64) error {
	s.logger.Info("MarkPaid: marking invoice id=%d as paid", id)

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("MarkPaid: invoice id=%d not found", id)
			return ErrInvoiceNotFound
		}
		s.logger.Error("MarkPaid: repository error for invoice id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	if !invoice.CanBePaid() {
		s.logger.Warn("MarkPaid: invoice id=%d cannot be paid, status=%s", id, invoice.Status)
		return ErrCannotPay
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.invoiceRepo.UpdateStatus(txCtx, invoice.ID, domain.InvoiceStatusPaid); err != nil {
			return fmt.Errorf("update invoice status: %w", err)
		}

		entry := &domain.CashFlowEntry{
			Type:        domain.CashFlowIncome,
			Category:    "servicos",
			Description: fmt.Sprintf("Recebimento da cobrança %s", invoice.Number),
			Amount:      invoice.Amount,
			Date:        time.Now(),
			InvoiceID:   &invoice.ID,
		}
		if _, err := s.cashFlowRepo.Create(txCtx, entry); err != nil {
			return fmt.Errorf("create cash flow entry: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Error("MarkPaid: transaction failed for invoice id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkPaid - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("MarkPaid: invoice id=%d paid", id)
	return nil
}

// Cancel cancels a draft or issued invoice.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling invoice id=%d", id)

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("Cancel: invoice id=%d not found", id)
			return ErrInvoiceNotFound
		}
		s.logger.Error("Cancel: repository error for invoice id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !invoice.CanBeCancelled() {
		s.logger.Warn("Cancel: invoice id=%d cannot be cancelled, status=%s", id, invoice.Status)
		return ErrCannotCancel
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, domain.InvoiceStatusCancelled); err != nil {
		s.logger.Error("Cancel: repository error for invoice id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled invoice id=%d", id)
	return nil
}
