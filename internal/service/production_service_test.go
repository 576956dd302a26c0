package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

func TestProductionRecordComputesKilograms(t *testing.T) {
	products := newStubProductRepo()
	production := newStubProductionRepo()
	svc := service.NewProductionService(production, products)

	id := products.add(model.Product{Name: "Lasagne", KgPerTray: d("2.5")})

	resp, err := svc.Record(context.Background(), dto.RecordProductionRequest{
		ProductID:     id.String(),
		Date:          "2026-08-20",
		TraysProduced: "12,5",
	})
	require.NoError(t, err)

	assert.True(t, resp.Trays.Equal(d("12.5")))
	assert.True(t, resp.Kilograms.Equal(d("31.25")), "kg: %s", resp.Kilograms)
	require.Len(t, production.entries, 1)
}

func TestProductionRecordRejectsNonPositiveTrays(t *testing.T) {
	products := newStubProductRepo()
	production := newStubProductionRepo()
	svc := service.NewProductionService(production, products)

	id := products.add(model.Product{Name: "Lasagne", KgPerTray: d("2.5")})

	for _, trays := range []string{"0", "-3", "niente"} {
		_, err := svc.Record(context.Background(), dto.RecordProductionRequest{
			ProductID:     id.String(),
			TraysProduced: trays,
		})
		assert.ErrorIs(t, err, service.ErrValidation, "trays=%s", trays)
	}
	assert.Empty(t, production.entries)
}

func TestProductionRecordUnknownProduct(t *testing.T) {
	svc := service.NewProductionService(newStubProductionRepo(), newStubProductRepo())

	_, err := svc.Record(context.Background(), dto.RecordProductionRequest{
		ProductID:     newUUID().String(),
		TraysProduced: "5",
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestProductionRecordDefaultsDateToToday(t *testing.T) {
	products := newStubProductRepo()
	production := newStubProductionRepo()
	svc := service.NewProductionService(production, products)

	id := products.add(model.Product{Name: "Lasagne", KgPerTray: d("2.5")})

	resp, err := svc.Record(context.Background(), dto.RecordProductionRequest{
		ProductID:     id.String(),
		TraysProduced: "5",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, resp.Date)
}
