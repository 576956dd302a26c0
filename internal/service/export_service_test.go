package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

func TestLoadListCSVLayout(t *testing.T) {
	f := newLedgerFixture()
	product := model.Product{ID: newUUID(), Name: "Lasagne", KgPerTray: d("2.5")}
	f.products.add(product)
	code := "C001"
	client := model.Client{ID: newUUID(), Name: "Trattoria da Gino", Code: &code}
	f.orders.orders = append(f.orders.orders, model.Order{
		ID:       newUUID(),
		Date:     "2026-08-20",
		ClientID: client.ID,
		Client:   &client,
		Lines: []model.OrderLine{
			{ProductID: product.ID, Quantity: d("5"), UnitType: model.UnitKilograms, Product: &product},
		},
	})

	exports := service.NewExportService(f.svc)
	body, filename, err := exports.LoadListCSV(context.Background(), "2026-08-20")
	require.NoError(t, err)

	assert.Equal(t, "lista_carico_2026-08-20.csv", filename)
	text := string(body)
	require.True(t, strings.HasPrefix(text, "\xEF\xBB\xBF"), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(text, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Data;Cliente;Cod. Cliente;Prodotto;Cod. Prod.;Vaschette;Kg", lines[0])
	assert.Equal(t, "2026-08-20;Trattoria da Gino;C001;Lasagne;;2.00;5.00", lines[1])
}

func TestStockCSVLayout(t *testing.T) {
	f := newLedgerFixture()
	f.products.add(model.Product{
		Name:              "Lasagne",
		KgPerTray:         d("2.5"),
		InitialStockTrays: d("10"),
	})

	exports := service.NewExportService(f.svc)
	body, filename, err := exports.StockCSV(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "magazzino.csv", filename)
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(body), "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Cod;Prodotto;Kg/vaschetta;Giacenza iniziale;Prodotte;Ordinate;Giacenza vaschette;Giacenza kg", lines[0])
	assert.Equal(t, ";Lasagne;2.500;10.00;0.00;0.00;10.00;25.00", lines[1])
}
