package invoices

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	clientRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/client"
	invoiceRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/invoice"
	settingsRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/settings"
	"github.com/rmarins/MEI-AgendaService/internal/service/invoices/models"
	"github.com/rmarins/MEI-AgendaService/pkg/ptr"
)

type fakeInvoiceRepo struct {
	byID     map[int64]*domain.Invoice
	statuses map[int64]domain.InvoiceStatus
	nextID   int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		byID:     make(map[int64]*domain.Invoice),
		statuses: make(map[int64]domain.InvoiceStatus),
	}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	f.nextID++
	stored := *invoice
	stored.ID = f.nextID
	stored.Number = "ORC-2026-0001"
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*domain.Invoice, error) {
	invoice, ok := f.byID[id]
	if !ok {
		return nil, invoiceRepo.ErrInvoiceNotFound
	}
	return invoice, nil
}

func (f *fakeInvoiceRepo) List(_ context.Context, _ domain.InvoicesFilter) ([]*domain.Invoice, error) {
	out := make([]*domain.Invoice, 0, len(f.byID))
	for _, invoice := range f.byID {
		out = append(out, invoice)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) UpdateStatus(_ context.Context, id int64, status domain.InvoiceStatus) error {
	f.statuses[id] = status
	return nil
}

type fakeClientRepo struct {
	clients map[int64]*domain.Client
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return client, nil
}

type fakeProfileRepo struct {
	profile *domain.Profile
}

func (f *fakeProfileRepo) GetProfile(_ context.Context) (*domain.Profile, error) {
	if f.profile == nil {
		return nil, settingsRepo.ErrProfileNotFound
	}
	return f.profile, nil
}

type fakeCashFlowRepo struct {
	entries []*domain.CashFlowEntry
}

func (f *fakeCashFlowRepo) Create(_ context.Context, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc      *Service
	invoices *fakeInvoiceRepo
	clients  *fakeClientRepo
	profile  *fakeProfileRepo
	cashflow *fakeCashFlowRepo
	tx       *fakeTxManager
}

func newFixture() *fixture {
	f := &fixture{
		invoices: newFakeInvoiceRepo(),
		clients:  &fakeClientRepo{clients: make(map[int64]*domain.Client)},
		profile:  &fakeProfileRepo{},
		cashflow: &fakeCashFlowRepo{},
		tx:       &fakeTxManager{},
	}
	f.clients.clients[1] = &domain.Client{ID: 1, Name: "Maria Silva"}
	f.svc = NewService(f.invoices, f.clients, f.profile, f.cashflow, f.tx, nopLogger{})
	return f
}

func (f *fixture) addInvoice(status domain.InvoiceStatus) *domain.Invoice {
	f.invoices.nextID++
	invoice := &domain.Invoice{
		ID:       f.invoices.nextID,
		ClientID: 1,
		Number:   "ORC-2026-0042",
		Amount:   150,
		Status:   status,
	}
	f.invoices.byID[invoice.ID] = invoice
	return invoice
}

func TestCreate_OpensDraft(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Create(context.Background(), &models.CreateInvoiceRequest{
		ClientID:    1,
		Description: "Corte de cabelo",
		Amount:      80,
	})
	require.NoError(t, err)

	assert.Equal(t, "ORC-2026-0001", resp.Number)
	assert.Equal(t, string(domain.InvoiceStatusDraft), resp.Status)
}

func TestCreate_UnknownClient(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), &models.CreateInvoiceRequest{
		ClientID:    99,
		Description: "Corte",
		Amount:      80,
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGenerateCharge_BuildsPixAndIssues(t *testing.T) {
	f := newFixture()
	f.profile.profile = &domain.Profile{Name: "Ana Souza", City: "Sao Paulo", PixKey: "ana@example.com"}
	invoice := f.addInvoice(domain.InvoiceStatusDraft)

	resp, err := f.svc.GenerateCharge(context.Background(), invoice.ID)
	require.NoError(t, err)

	assert.Equal(t, invoice.ID, resp.InvoiceID)
	assert.Equal(t, "ORC-2026-0042", resp.Number)
	assert.True(t, strings.HasPrefix(resp.PixPayload, "000201"), "EMV payload starts with the format indicator")
	assert.Contains(t, resp.PixPayload, "ana@example.com")
	assert.Contains(t, resp.QRCodeURL, "size=300x300")
	assert.Nil(t, resp.WhatsAppLink, "client without phone gets no link")
	assert.Equal(t, domain.InvoiceStatusIssued, f.invoices.statuses[invoice.ID])
}

func TestGenerateCharge_WhatsAppLinkWithPhone(t *testing.T) {
	f := newFixture()
	f.profile.profile = &domain.Profile{Name: "Ana Souza", City: "Sao Paulo", PixKey: "ana@example.com"}
	f.clients.clients[1].Phone = ptr.Ptr("(11) 99999-8888")
	invoice := f.addInvoice(domain.InvoiceStatusIssued)

	resp, err := f.svc.GenerateCharge(context.Background(), invoice.ID)
	require.NoError(t, err)

	require.NotNil(t, resp.WhatsAppLink)
	assert.True(t, strings.HasPrefix(*resp.WhatsAppLink, "https://wa.me/5511999998888?text="))
	// Already issued: no second status transition.
	assert.Empty(t, f.invoices.statuses)
}

func TestGenerateCharge_NoPixKey(t *testing.T) {
	f := newFixture()
	f.profile.profile = &domain.Profile{Name: "Ana Souza", City: "Sao Paulo"}
	invoice := f.addInvoice(domain.InvoiceStatusDraft)

	_, err := f.svc.GenerateCharge(context.Background(), invoice.ID)
	assert.ErrorIs(t, err, ErrNoPixKey)
}

func TestGenerateCharge_NoProfile(t *testing.T) {
	f := newFixture()
	invoice := f.addInvoice(domain.InvoiceStatusDraft)

	_, err := f.svc.GenerateCharge(context.Background(), invoice.ID)
	assert.ErrorIs(t, err, ErrNoPixKey)
}

func TestGenerateCharge_PaidInvoiceRejected(t *testing.T) {
	f := newFixture()
	f.profile.profile = &domain.Profile{Name: "Ana", City: "Recife", PixKey: "chave"}
	invoice := f.addInvoice(domain.InvoiceStatusPaid)

	_, err := f.svc.GenerateCharge(context.Background(), invoice.ID)
	assert.ErrorIs(t, err, ErrCannotCharge)
}

func TestMarkPaid_RecordsIncomeEntry(t *testing.T) {
	f := newFixture()
	invoice := f.addInvoice(domain.InvoiceStatusIssued)

	require.NoError(t, f.svc.MarkPaid(context.Background(), invoice.ID))

	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, domain.InvoiceStatusPaid, f.invoices.statuses[invoice.ID])
	require.Len(t, f.cashflow.entries, 1)
	entry := f.cashflow.entries[0]
	assert.Equal(t, domain.CashFlowIncome, entry.Type)
	assert.Equal(t, invoice.Amount, entry.Amount)
	assert.Contains(t, entry.Description, "ORC-2026-0042")
	require.NotNil(t, entry.InvoiceID)
	assert.Equal(t, invoice.ID, *entry.InvoiceID)
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	f := newFixture()
	invoice := f.addInvoice(domain.InvoiceStatusPaid)

	err := f.svc.MarkPaid(context.Background(), invoice.ID)
	assert.ErrorIs(t, err, ErrCannotPay)
	assert.Empty(t, f.cashflow.entries)
}

func TestCancel_IssuedInvoice(t *testing.T) {
	f := newFixture()
	invoice := f.addInvoice(domain.InvoiceStatusIssued)

	require.NoError(t, f.svc.Cancel(context.Background(), invoice.ID))
	assert.Equal(t, domain.InvoiceStatusCancelled, f.invoices.statuses[invoice.ID])
}

func TestCancel_PaidInvoiceRejected(t *testing.T) {
	f := newFixture()
	invoice := f.addInvoice(domain.InvoiceStatusPaid)

	err := f.svc.Cancel(context.Background(), invoice.ID)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
