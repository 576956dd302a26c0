package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/repository"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/unit"
)

// StockService is the stock ledger calculator. Every read recomputes the
// snapshot from current committed ledger state: initial stock plus produced
// trays minus ordered quantities normalized to trays. Nothing is cached, so
// the snapshot can never drift from the ledgers.
type StockService interface {
	// ListSnapshots returns one snapshot per product, sorted by product name.
	ListSnapshots(ctx context.Context) ([]dto.StockSnapshot, error)
	GetSnapshot(ctx context.Context, productID uuid.UUID) (*dto.StockSnapshot, error)
	// LoadList returns the date's order lines normalized to both units,
	// sorted by client then product.
	LoadList(ctx context.Context, date string) ([]dto.LoadListRow, error)
}

type stockService struct {
	productRepo    repository.ProductRepository
	productionRepo repository.ProductionRepository
	orderRepo      repository.OrderRepository
}

func NewStockService(
	productRepo repository.ProductRepository,
	productionRepo repository.ProductionRepository,
	orderRepo repository.OrderRepository,
) StockService {
	return &stockService{
		productRepo:    productRepo,
		productionRepo: productionRepo,
		orderRepo:      orderRepo,
	}
}

func (s *stockService) ListSnapshots(ctx context.Context) ([]dto.StockSnapshot, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	producedTotals, err := s.productionRepo.SumTraysGrouped(ctx)
	if err != nil {
		return nil, err
	}
	produced := make(map[uuid.UUID]decimal.Decimal, len(producedTotals))
	for _, t := range producedTotals {
		produced[t.ProductID] = t.Total
	}

	lines, err := s.orderRepo.AllLines(ctx)
	if err != nil {
		return nil, err
	}
	factors := make(map[uuid.UUID]decimal.Decimal, len(products))
	for i := range products {
		factors[products[i].ID] = products[i].KgPerTray
	}
	ordered := make(map[uuid.UUID]decimal.Decimal, len(products))
	for _, l := range lines {
		ordered[l.ProductID] = ordered[l.ProductID].
			Add(unit.ToTrays(l.Quantity, l.UnitType, factors[l.ProductID]))
	}

	snapshots := make([]dto.StockSnapshot, 0, len(products))
	for i := range products {
		p := &products[i]
		snapshots = append(snapshots, buildSnapshot(p, produced[p.ID], ordered[p.ID]))
	}
	return snapshots, nil
}

func (s *stockService) GetSnapshot(ctx context.Context, productID uuid.UUID) (*dto.StockSnapshot, error) {
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	producedTrays, err := s.productionRepo.SumTraysForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	lines, err := s.orderRepo.LinesForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	orderedTrays := decimal.Zero
	for _, l := range lines {
		orderedTrays = orderedTrays.Add(unit.ToTrays(l.Quantity, l.UnitType, p.KgPerTray))
	}

	snap := buildSnapshot(p, producedTrays, orderedTrays)
	return &snap, nil
}

func (s *stockService) LoadList(ctx context.Context, date string) ([]dto.LoadListRow, error) {
	if date == "" {
		date = today()
	}
	rows, err := s.orderRepo.LoadListRows(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoadListRow, 0, len(rows))
	for _, r := range rows {
		trays := unit.ToTrays(r.Quantity, r.UnitType, r.KgPerTray)
		var kg decimal.Decimal
		if r.UnitType == model.UnitKilograms {
			kg = r.Quantity
		} else {
			kg = unit.ToKilograms(r.Quantity, r.KgPerTray)
		}
		out = append(out, dto.LoadListRow{
			Date:        r.Date,
			ClientName:  r.ClientName,
			ClientCode:  r.ClientCode,
			ProductName: r.ProductName,
			ProductCode: r.ProductCode,
			Trays:       trays,
			Kilograms:   kg,
		})
	}
	return out, nil
}

// buildSnapshot does the ledger arithmetic for one product:
// net = initial + produced − ordered, then the kg equivalent.
func buildSnapshot(p *model.Product, producedTrays, orderedTrays decimal.Decimal) dto.StockSnapshot {
	netTrays := p.InitialStockTrays.Add(producedTrays).Sub(orderedTrays)
	return dto.StockSnapshot{
		ProductID:     p.ID.String(),
		ProductCode:   p.Code,
		ProductName:   p.Name,
		KgPerTray:     p.KgPerTray,
		InitialTrays:  p.InitialStockTrays,
		ProducedTrays: producedTrays,
		OrderedTrays:  orderedTrays,
		NetTrays:      netTrays,
		NetKilograms:  unit.ToKilograms(netTrays, p.KgPerTray),
	}
}
