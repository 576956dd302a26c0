package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
)

// ExportService renders snapshot and load-list views as CSV attachments with
// the layout the warehouse spreadsheets expect: semicolon delimiter, UTF-8
// BOM (so Excel detects the encoding), Italian headers, fixed decimals.
type ExportService interface {
	// LoadListCSV returns the file body and its download name for a date
	// (today when blank).
	LoadListCSV(ctx context.Context, date string) ([]byte, string, error)
	StockCSV(ctx context.Context) ([]byte, string, error)
}

type exportService struct {
	stock StockService
}

func NewExportService(stock StockService) ExportService {
	return &exportService{stock: stock}
}

func (s *exportService) LoadListCSV(ctx context.Context, date string) ([]byte, string, error) {
	if date == "" {
		date = today()
	}
	rows, err := s.stock.LoadList(ctx, date)
	if err != nil {
		return nil, "", err
	}

	records := [][]string{
		{"Data", "Cliente", "Cod. Cliente", "Prodotto", "Cod. Prod.", "Vaschette", "Kg"},
	}
	for _, r := range rows {
		records = append(records, []string{
			r.Date,
			r.ClientName,
			codeOrEmpty(r.ClientCode),
			r.ProductName,
			codeOrEmpty(r.ProductCode),
			r.Trays.StringFixed(2),
			r.Kilograms.StringFixed(2),
		})
	}

	body, err := writeCSV(records)
	if err != nil {
		return nil, "", err
	}
	return body, fmt.Sprintf("lista_carico_%s.csv", date), nil
}

func (s *exportService) StockCSV(ctx context.Context) ([]byte, string, error) {
	snapshots, err := s.stock.ListSnapshots(ctx)
	if err != nil {
		return nil, "", err
	}

	records := [][]string{
		{"Cod", "Prodotto", "Kg/vaschetta", "Giacenza iniziale", "Prodotte", "Ordinate", "Giacenza vaschette", "Giacenza kg"},
	}
	for _, snap := range snapshots {
		records = append(records, []string{
			codeOrEmpty(snap.ProductCode),
			snap.ProductName,
			snap.KgPerTray.StringFixed(3),
			snap.InitialTrays.StringFixed(2),
			snap.ProducedTrays.StringFixed(2),
			snap.OrderedTrays.StringFixed(2),
			snap.NetTrays.StringFixed(2),
			snap.NetKilograms.StringFixed(2),
		})
	}

	body, err := writeCSV(records)
	if err != nil {
		return nil, "", err
	}
	return body, "magazzino.csv", nil
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF") // UTF-8 BOM

	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func codeOrEmpty(code *string) string {
	if code == nil {
		return ""
	}
	return *code
}
