package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/repository"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/unit"
)

// ProductionService records and lists tray replenishment events.
type ProductionService interface {
	Record(ctx context.Context, req dto.RecordProductionRequest) (*dto.ProductionEntryResponse, error)
	List(ctx context.Context) ([]dto.ProductionEntryResponse, error)
}

type productionService struct {
	repo        repository.ProductionRepository
	productRepo repository.ProductRepository
}

func NewProductionService(repo repository.ProductionRepository, productRepo repository.ProductRepository) ProductionService {
	return &productionService{repo: repo, productRepo: productRepo}
}

func (s *productionService) Record(ctx context.Context, req dto.RecordProductionRequest) (*dto.ProductionEntryResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: product_id non valido", ErrValidation)
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: prodotto", ErrNotFound)
		}
		return nil, err
	}

	trays, err := parseQuantity(req.TraysProduced)
	if err != nil {
		return nil, fmt.Errorf("%w: numero di vaschette non valido", ErrValidation)
	}
	if trays.Sign() <= 0 {
		return nil, fmt.Errorf("%w: le vaschette devono essere maggiori di 0", ErrValidation)
	}

	date := req.Date
	if date == "" {
		date = today()
	}

	entry := &model.ProductionEntry{
		Date:          date,
		ProductID:     productID,
		TraysProduced: trays,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return &dto.ProductionEntryResponse{
		ID:          entry.ID.String(),
		Date:        entry.Date,
		ProductName: product.Name,
		ProductCode: product.Code,
		Trays:       entry.TraysProduced,
		Kilograms:   unit.ToKilograms(entry.TraysProduced, product.KgPerTray),
	}, nil
}

func (s *productionService) List(ctx context.Context) ([]dto.ProductionEntryResponse, error) {
	entries, err := s.repo.ListWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := dto.ProductionEntryResponse{
			ID:    e.ID.String(),
			Date:  e.Date,
			Trays: e.TraysProduced,
		}
		if e.Product != nil {
			resp.ProductName = e.Product.Name
			resp.ProductCode = e.Product.Code
			resp.Kilograms = unit.ToKilograms(e.TraysProduced, e.Product.KgPerTray)
		}
		out = append(out, resp)
	}
	return out, nil
}
