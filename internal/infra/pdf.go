package infra

// pdf.go — warehouse paperwork generation using go-pdf/fpdf.
// Two documents share the same table layout:
//   - the per-order checklist the pickers tick off while loading trays
//   - the day document, one page per order of a given date
// Both are returned as in-memory bytes; nothing is written to disk.

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
)

const companyName = "MAMMA CHE PASTA Srl"

// GenerateOrderChecklistPDF renders one order as an A4 picking checklist.
func GenerateOrderChecklistPDF(order *dto.OrderDetailResponse) ([]byte, error) {
	pdf := newA4()
	pdf.AddPage()
	writeOrderPage(pdf, order)
	return output(pdf)
}

// GenerateDayDocumentPDF renders every order of a date, one page each, in the
// order the service returns them (client name, then insertion order).
func GenerateDayDocumentPDF(date string, orders []dto.OrderDetailResponse) ([]byte, error) {
	pdf := newA4()
	if len(orders) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(pdf, "Nessun ordine per il giorno "+date), "", 1, "C", false, 0, "")
		return output(pdf)
	}
	for i := range orders {
		pdf.AddPage()
		writeOrderPage(pdf, &orders[i])
	}
	return output(pdf)
}

func newA4() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	return pdf
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tr converts UTF-8 strings to the cp1252 encoding fpdf's core fonts expect,
// so accented Italian names render correctly.
func tr(pdf *fpdf.Fpdf, s string) string {
	return pdf.UnicodeTranslatorFromDescriptor("")(s)
}

func writeOrderPage(pdf *fpdf.Fpdf, order *dto.OrderDetailResponse) {
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Scheda di preparazione ordine", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	client := order.ClientName
	if order.ClientCode != nil {
		client += " (" + *order.ClientCode + ")"
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW/2, 7, tr(pdf, "Cliente: "+client), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 7, "Data consegna: "+order.Date, "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// ── Line table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // product
	col2 := contentW * 0.18 // kg
	col3 := contentW * 0.18 // trays
	col4 := contentW * 0.18 // check box

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Prodotto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Kg", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 7, "Vaschette", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Check", "B", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range order.Lines {
		name := l.ProductName
		if l.ProductCode != nil {
			name = *l.ProductCode + " - " + name
		}
		pdf.CellFormat(col1, 8, tr(pdf, name), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 8, l.Kilograms.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 8, l.Trays.StringFixed(2), "", 0, "R", false, 0, "")

		// empty square the picker ticks by hand
		x, y := pdf.GetXY()
		pdf.Rect(x+col4/2-2.5, y+1.5, 5, 5, "D")
		pdf.Ln(8)
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1, 8, "TOTALE", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, order.TotalKg.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 8, order.TotalTrays.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 7, "Firma magazziniere: ____________________", "", 1, "L", false, 0, "")
}
