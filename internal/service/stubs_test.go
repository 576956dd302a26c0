package service_test

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/repository"
)

// In-memory repository stubs. They reproduce the behaviors the services rely
// on (record-not-found, duplicated-key on name clashes, RowsAffected checks)
// without a database.

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func newUUID() uuid.UUID { return uuid.New() }

func mustUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ─── clients ─────────────────────────────────────────────────────────────────

type stubClientRepo struct {
	clients    map[uuid.UUID]*model.Client
	orderCount map[uuid.UUID]int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{
		clients:    make(map[uuid.UUID]*model.Client),
		orderCount: make(map[uuid.UUID]int64),
	}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	for _, existing := range r.clients {
		if existing.Name == c.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubClientRepo) List(_ context.Context) ([]model.Client, error) {
	out := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubClientRepo) CountOrders(_ context.Context, clientID uuid.UUID) (int64, error) {
	return r.orderCount[clientID], nil
}

func (r *stubClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.clients[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.clients, id)
	return nil
}

// ─── products ────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
	refCount map[uuid.UUID]int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: make(map[uuid.UUID]*model.Product),
		refCount: make(map[uuid.UUID]int64),
	}
}

func (r *stubProductRepo) add(p model.Product) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = &p
	return p.ID
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) CountReferences(_ context.Context, productID uuid.UUID) (int64, error) {
	return r.refCount[productID], nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.products, id)
	return nil
}

// ─── orders ──────────────────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders     []model.Order
	failCreate error
}

func newStubOrderRepo() *stubOrderRepo { return &stubOrderRepo{} }

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

func (r *stubOrderRepo) CreateTx(_ *gorm.DB, o *model.Order) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Lines {
		if o.Lines[i].ID == uuid.Nil {
			o.Lines[i].ID = uuid.New()
		}
		o.Lines[i].OrderID = o.ID
	}
	cp := *o
	cp.Lines = append([]model.OrderLine(nil), o.Lines...)
	r.orders = append(r.orders, cp)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			cp := r.orders[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepo) ListSummaries(_ context.Context) ([]repository.OrderSummaryRow, error) {
	return nil, nil
}

func (r *stubOrderRepo) AllLines(_ context.Context) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	for i := range r.orders {
		lines = append(lines, r.orders[i].Lines...)
	}
	return lines, nil
}

func (r *stubOrderRepo) LinesForProduct(_ context.Context, productID uuid.UUID) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	for i := range r.orders {
		for _, l := range r.orders[i].Lines {
			if l.ProductID == productID {
				lines = append(lines, l)
			}
		}
	}
	return lines, nil
}

func (r *stubOrderRepo) LoadListRows(_ context.Context, date string) ([]repository.LoadListJoinRow, error) {
	var rows []repository.LoadListJoinRow
	for i := range r.orders {
		o := &r.orders[i]
		if o.Date != date {
			continue
		}
		for _, l := range o.Lines {
			row := repository.LoadListJoinRow{
				Date:     o.Date,
				Quantity: l.Quantity,
				UnitType: l.UnitType,
			}
			if o.Client != nil {
				row.ClientName = o.Client.Name
				row.ClientCode = o.Client.Code
			}
			if l.Product != nil {
				row.ProductName = l.Product.Name
				row.ProductCode = l.Product.Code
				row.KgPerTray = l.Product.KgPerTray
			}
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ClientName != rows[j].ClientName {
			return rows[i].ClientName < rows[j].ClientName
		}
		return rows[i].ProductName < rows[j].ProductName
	})
	return rows, nil
}

func (r *stubOrderRepo) OrdersForDate(_ context.Context, date string) ([]model.Order, error) {
	var out []model.Order
	for i := range r.orders {
		if r.orders[i].Date == date {
			out = append(out, r.orders[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		var ni, nj string
		if out[i].Client != nil {
			ni = out[i].Client.Name
		}
		if out[j].Client != nil {
			nj = out[j].Client.Name
		}
		return ni < nj
	})
	return out, nil
}

func (r *stubOrderRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ─── production ──────────────────────────────────────────────────────────────

type stubProductionRepo struct {
	entries []model.ProductionEntry
}

func newStubProductionRepo() *stubProductionRepo { return &stubProductionRepo{} }

func (r *stubProductionRepo) Create(_ context.Context, e *model.ProductionEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *stubProductionRepo) ListWithProduct(_ context.Context) ([]model.ProductionEntry, error) {
	return append([]model.ProductionEntry(nil), r.entries...), nil
}

func (r *stubProductionRepo) SumTraysGrouped(_ context.Context) ([]repository.ProducedTotal, error) {
	sums := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID
	for _, e := range r.entries {
		if _, ok := sums[e.ProductID]; !ok {
			order = append(order, e.ProductID)
		}
		sums[e.ProductID] = sums[e.ProductID].Add(e.TraysProduced)
	}
	out := make([]repository.ProducedTotal, 0, len(order))
	for _, id := range order {
		out = append(out, repository.ProducedTotal{ProductID: id, Total: sums[id]})
	}
	return out, nil
}

func (r *stubProductionRepo) SumTraysForProduct(_ context.Context, productID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.entries {
		if e.ProductID == productID {
			total = total.Add(e.TraysProduced)
		}
	}
	return total, nil
}
