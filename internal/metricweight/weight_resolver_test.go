package metricweight_test

import (
	"context"
	"testing"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/metricweight"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeWeightRepo struct {
	squadRows   []metricweight.MetricWeight
	genericRows []metricweight.MetricWeight
}

func (f *fakeWeightRepo) FindActive(ctx context.Context, anoMes, cargoCatalogID string, squad *string) ([]metricweight.MetricWeight, error) {
	if squad == nil {
		return f.genericRows, nil
	}
	return f.squadRows, nil
}

func floatPtr(v float64) *float64 { return &v }

func TestResolve_NoCargoMeansNoMetrics(t *testing.T) {
	r := metricweight.NewResolver(&fakeWeightRepo{})
	rep := salesrep.SalesRep{ID: uuid.New(), Squad: "incorporador"}

	rows, err := r.Resolve(context.Background(), rep, "2025-06")

	assert.NoError(t, err)
	assert.Nil(t, rows)
}

func TestResolve_GenericFallbackWhenNoSquadRows(t *testing.T) {
	cargoID := uuid.New()
	generic := []metricweight.MetricWeight{
		{Metrica: metricweight.MetricAgendamento, PesoPercent: 35},
		{Metrica: metricweight.MetricRealizada, PesoPercent: 55},
	}
	r := metricweight.NewResolver(&fakeWeightRepo{genericRows: generic})
	rep := salesrep.SalesRep{ID: uuid.New(), Squad: "incorporador", CargoCatalogID: &cargoID}

	rows, err := r.Resolve(context.Background(), rep, "2025-06")

	assert.NoError(t, err)
	assert.Equal(t, generic, rows)
}

func TestResolve_ContratosMetaPercentualPerFieldFallback(t *testing.T) {
	cargoID := uuid.New()
	repo := &fakeWeightRepo{
		squadRows: []metricweight.MetricWeight{
			{Metrica: metricweight.MetricRealizada, PesoPercent: 55, MetaValor: floatPtr(2)},
			{Metrica: metricweight.MetricContratos, PesoPercent: 20},
		},
		genericRows: []metricweight.MetricWeight{
			{Metrica: metricweight.MetricRealizada, PesoPercent: 50, MetaValor: floatPtr(3)},
			{Metrica: metricweight.MetricContratos, PesoPercent: 25, MetaPercentual: floatPtr(30)},
		},
	}
	r := metricweight.NewResolver(repo)
	rep := salesrep.SalesRep{ID: uuid.New(), Squad: "incorporador", CargoCatalogID: &cargoID}

	rows, err := r.Resolve(context.Background(), rep, "2025-06")

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// Baris squad tetap dipakai, bukan merge menyeluruh dengan generik.
	assert.Equal(t, float64(55), rows[0].PesoPercent)
	assert.Equal(t, float64(2), *rows[0].MetaValor)

	// Hanya meta_percentual kontrak yang diwarisi dari baris generik.
	assert.Equal(t, float64(20), rows[1].PesoPercent)
	assert.NotNil(t, rows[1].MetaPercentual)
	assert.Equal(t, float64(30), *rows[1].MetaPercentual)
}

func TestResolve_SquadContratosKeepsOwnMetaPercentual(t *testing.T) {
	cargoID := uuid.New()
	repo := &fakeWeightRepo{
		squadRows: []metricweight.MetricWeight{
			{Metrica: metricweight.MetricContratos, PesoPercent: 20, MetaPercentual: floatPtr(15)},
		},
		genericRows: []metricweight.MetricWeight{
			{Metrica: metricweight.MetricContratos, PesoPercent: 25, MetaPercentual: floatPtr(30)},
		},
	}
	r := metricweight.NewResolver(repo)
	rep := salesrep.SalesRep{ID: uuid.New(), Squad: "incorporador", CargoCatalogID: &cargoID}

	rows, err := r.Resolve(context.Background(), rep, "2025-06")

	assert.NoError(t, err)
	assert.Equal(t, float64(15), *rows[0].MetaPercentual)
}
