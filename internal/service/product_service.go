package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/repository"
)

// ProductService defines the business logic contract for the product catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	// Update allows direct edits; ledger history referencing the product is
	// left untouched, so snapshots recompute against the new factor.
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	// Delete refuses to remove a product referenced by order lines or
	// production entries.
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: il nome del prodotto è obbligatorio", ErrValidation)
	}

	kgPerTray, err := parseQuantity(req.KgPerTray)
	if err != nil {
		return nil, fmt.Errorf("%w: kg per vaschetta non numerico", ErrValidation)
	}

	initial := decimal.Zero
	if strings.TrimSpace(req.InitialStockTrays) != "" {
		initial, err = parseQuantity(req.InitialStockTrays)
		if err != nil {
			return nil, fmt.Errorf("%w: giacenza iniziale non numerica", ErrValidation)
		}
	}

	p := &model.Product{
		Code:              normalizeCode(req.Code),
		Name:              name,
		KgPerTray:         kgPerTray,
		InitialStockTrays: initial,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: prodotto %q", ErrDuplicateName, name)
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: il nome del prodotto è obbligatorio", ErrValidation)
		}
		p.Name = name
	}
	if req.Code != nil {
		p.Code = normalizeCode(req.Code)
	}
	if req.KgPerTray != nil {
		kg, err := parseQuantity(*req.KgPerTray)
		if err != nil {
			return nil, fmt.Errorf("%w: kg per vaschetta non numerico", ErrValidation)
		}
		p.KgPerTray = kg
	}
	if req.InitialStockTrays != nil {
		initial, err := parseQuantity(*req.InitialStockTrays)
		if err != nil {
			return nil, fmt.Errorf("%w: giacenza iniziale non numerica", ErrValidation)
		}
		p.InitialStockTrays = initial
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: prodotto %q", ErrDuplicateName, p.Name)
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: il prodotto ha %d movimenti registrati", ErrReferentialConflict, n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID.String(),
		Code:              p.Code,
		Name:              p.Name,
		KgPerTray:         p.KgPerTray,
		InitialStockTrays: p.InitialStockTrays,
	}
}
