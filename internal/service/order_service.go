package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/repository"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/unit"
)

// OrderService covers order intake, reads and deletion.
type OrderService interface {
	// Create validates candidate lines one by one and commits the order in a
	// single transaction — either the header with at least one line exists
	// afterwards, or nothing does.
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderCreatedResponse, error)
	List(ctx context.Context) ([]dto.OrderSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderDetailResponse, error)
	// DayOrders returns the date's orders in day-document layout
	// (client name, then insertion order).
	DayOrders(ctx context.Context, date string) ([]dto.OrderDetailResponse, error)
	// Delete removes the order and cascades to its lines.
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	repo        repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
}

func NewOrderService(
	repo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
) OrderService {
	return &orderService{repo: repo, clientRepo: clientRepo, productRepo: productRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// today returns the current date in the ledger's YYYY-MM-DD format.
func today() string { return time.Now().Format("2006-01-02") }

// ── Create ───────────────────────────────────────────────────────────────────
// Candidate lines are filtered individually: a bad line is discarded, not the
// whole order. Rows left entirely blank (no product, no quantity) are empty
// form rows and are skipped without counting as discarded. The header is only
// written once at least one line survived, so no compensating delete exists.

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderCreatedResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: client_id non valido", ErrValidation)
	}
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cliente", ErrNotFound)
		}
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = today()
	}

	var lines []model.OrderLine
	discarded := 0
	for _, raw := range req.Lines {
		productStr := strings.TrimSpace(raw.ProductID)
		qtyStr := strings.TrimSpace(raw.Quantity)

		// Empty form row — not a data-entry mistake.
		if productStr == "" && qtyStr == "" {
			continue
		}
		if productStr == "" || qtyStr == "" {
			discarded++
			continue
		}
		productID, err := uuid.Parse(productStr)
		if err != nil {
			discarded++
			continue
		}
		if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
			discarded++
			continue
		}
		qty, err := parseQuantity(qtyStr)
		if err != nil || qty.Sign() <= 0 {
			discarded++
			continue
		}
		if raw.UnitType != model.UnitKilograms && raw.UnitType != model.UnitTray {
			discarded++
			continue
		}

		lines = append(lines, model.OrderLine{
			ProductID: productID,
			Quantity:  qty,
			UnitType:  raw.UnitType,
		})
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: nessuna riga valida inserita", ErrValidation)
	}

	order := model.Order{
		Date:     date,
		ClientID: clientID,
		Lines:    lines,
	}
	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, &order)
	}); err != nil {
		return nil, err
	}

	return &dto.OrderCreatedResponse{
		ID:             order.ID.String(),
		Date:           order.Date,
		ClientID:       order.ClientID.String(),
		LinesAccepted:  len(lines),
		LinesDiscarded: discarded,
	}, nil
}

// ── Reads ────────────────────────────────────────────────────────────────────

func (s *orderService) List(ctx context.Context) ([]dto.OrderSummary, error) {
	rows, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OrderSummary{
			ID:         r.ID.String(),
			Date:       r.Date,
			ClientName: r.ClientName,
			ClientCode: r.ClientCode,
			LineCount:  r.LineCount,
			TotalKg:    r.TotalKg,
		})
	}
	return out, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderDetailResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ordine", ErrNotFound)
		}
		return nil, err
	}
	return orderToDetail(order), nil
}

func (s *orderService) DayOrders(ctx context.Context, date string) ([]dto.OrderDetailResponse, error) {
	if date == "" {
		date = today()
	}
	orders, err := s.repo.OrdersForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderDetailResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *orderToDetail(&orders[i]))
	}
	return out, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: ordine", ErrNotFound)
		}
		return err
	}
	return nil
}

// orderToDetail normalizes every line to both units through the converter and
// accumulates per-order totals. Lines are reported sorted by product name.
func orderToDetail(o *model.Order) *dto.OrderDetailResponse {
	detail := &dto.OrderDetailResponse{
		ID:         o.ID.String(),
		Date:       o.Date,
		TotalKg:    decimal.Zero,
		TotalTrays: decimal.Zero,
	}
	if o.Client != nil {
		detail.ClientName = o.Client.Name
		detail.ClientCode = o.Client.Code
	}

	lines := make([]model.OrderLine, len(o.Lines))
	copy(lines, o.Lines)
	sort.SliceStable(lines, func(i, j int) bool {
		var ni, nj string
		if lines[i].Product != nil {
			ni = lines[i].Product.Name
		}
		if lines[j].Product != nil {
			nj = lines[j].Product.Name
		}
		return ni < nj
	})

	detail.Lines = make([]dto.OrderLineDetail, 0, len(lines))
	for _, l := range lines {
		var name string
		var code *string
		factor := decimal.Zero
		if l.Product != nil {
			name = l.Product.Name
			code = l.Product.Code
			factor = l.Product.KgPerTray
		}

		trays := unit.ToTrays(l.Quantity, l.UnitType, factor)
		var kg decimal.Decimal
		if l.UnitType == model.UnitKilograms {
			kg = l.Quantity
		} else {
			kg = unit.ToKilograms(l.Quantity, factor)
		}

		detail.TotalKg = detail.TotalKg.Add(kg)
		detail.TotalTrays = detail.TotalTrays.Add(trays)
		detail.Lines = append(detail.Lines, dto.OrderLineDetail{
			ProductName: name,
			ProductCode: code,
			Kilograms:   kg,
			Trays:       trays,
		})
	}
	return detail
}
