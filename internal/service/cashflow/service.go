package cashflow

import (
	"context"
	"fmt"

	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow/models"
)

// Service manages the cash flow ledger.
type Service struct {
	cashFlowRepo CashFlowRepository
	logger       Logger
}

// NewService creates the cash flow service.
func NewService(cashFlowRepo CashFlowRepository, logger Logger) *Service {
	return &Service{
		cashFlowRepo: cashFlowRepo,
		logger:       logger,
	}
}

// CreateEntry records a manual income or expense entry.
func (s *Service) CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error) {
	s.logger.Info("CreateEntry: recording %s of %.2f", req.Type, req.Amount)

	if err := req.Validate(); err != nil {
		s.logger.Warn("CreateEntry: invalid entry payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entry, err := s.cashFlowRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("CreateEntry: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEntry: recorded entry id=%d", entry.ID)
	return models.FromDomainEntry(entry), nil
}

// List fetches entries for the period, newest first.
func (s *Service) List(ctx context.Context, req *models.ListEntriesRequest) (*models.EntryListResponse, error) {
	s.logger.Info("List: fetching entries, type=%v", req.Type)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid type", ErrInvalidInput)
	}

	entries, err := s.cashFlowRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d entries", len(entries))
	return models.FromDomainEntryList(entries), nil
}

// Summary aggregates the period into income, expense and balance.
func (s *Service) Summary(ctx context.Context, req *models.ListEntriesRequest) (*models.SummaryResponse, error) {
	s.logger.Info("Summary: aggregating entries")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Summary: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid type", ErrInvalidInput)
	}

	summary, err := s.cashFlowRepo.Summarize(ctx, filter)
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSummary(summary), nil
}
