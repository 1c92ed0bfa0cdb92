package clients

import (
	"context"
	"errors"
	"fmt"

	clientRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/client"
	"github.com/rmarins/MEI-AgendaService/internal/service/clients/models"
)

// Service manages the client base.
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService creates the clients service.
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create registers a new client.
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: registering client name=%q", req.Name)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: invalid client payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	client, err := s.clientRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: registered client id=%d", client.ID)
	return models.FromDomainClient(client), nil
}

// GetByID fetches one client.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%d", id)

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List fetches clients ordered by name, optionally filtered by a
// case-insensitive name fragment.
func (s *Service) List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error) {
	s.logger.Info("List: fetching clients, name=%v", req.Name)

	clients, err := s.clientRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Update edits a client. Nil fields in the request keep their current value.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%d", id)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: invalid client payload for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated client id=%d", id)
	return models.FromDomainClient(client), nil
}

// Delete removes a client. Clients with appointment history cannot be
// removed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing client id=%d", id)

	err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%d not found", id)
			return ErrClientNotFound
		}
		if errors.Is(err, clientRepo.ErrClientReferenced) {
			s.logger.Warn("Delete: client id=%d has appointments", id)
			return ErrClientHasAppointments
		}
		s.logger.Error("Delete: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed client id=%d", id)
	return nil
}
