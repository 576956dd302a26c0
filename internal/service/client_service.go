package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/repository"
)

// ClientService defines the business logic contract for the client registry.
type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	List(ctx context.Context) ([]dto.ClientResponse, error)
	// Delete refuses to remove a client that still has orders.
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: il nome è obbligatorio", ErrValidation)
	}

	c := &model.Client{
		Code: normalizeCode(req.Code),
		Name: name,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: cliente %q", ErrDuplicateName, name)
		}
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, *clientToResponse(&clients[i]))
	}
	return out, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.CountOrders(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: il cliente ha %d ordini", ErrReferentialConflict, n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// normalizeCode trims an optional code and maps blank to nil, so empty form
// fields never persist as empty strings.
func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:   c.ID.String(),
		Code: c.Code,
		Name: c.Name,
	}
}
