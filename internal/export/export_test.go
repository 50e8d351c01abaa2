package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/presenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func samplePoints() []domain.ForecastPoint {
	return []domain.ForecastPoint{
		{Month: "2025-01", Date: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), PredictedRevenue: 1234.567, LowerBound: 1000, UpperBound: 1469.1349},
		{Month: "2025-02", Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), PredictedRevenue: 900.1, LowerBound: -10.5, UpperBound: 1810.7},
	}
}

func TestWriteForecastCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteForecastCSV(&buf, samplePoints()))

	expected := "mes,data,faturamento_previsto,limite_inferior,limite_superior\n" +
		"2025-01,2025-01-31,1234.57,1000.00,1469.13\n" +
		"2025-02,2025-02-28,900.10,-10.50,1810.70\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteKpiCSV(t *testing.T) {
	var buf bytes.Buffer
	cards := []presenter.KpiCard{
		presenter.NewCard("Faturamento Total", "R$ 1,200.00", nil),
	}
	require.NoError(t, WriteKpiCSV(&buf, "2024-05", cards))

	expected := "indicador,valor,variacao\n" +
		"Mês,2024-05,\n" +
		"Faturamento Total,\"R$ 1,200.00\",–\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteForecastXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteForecastXLSX(&buf, samplePoints()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(forecastSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, forecastHeader, rows[0])
	assert.Equal(t, []string{"2025-01", "2025-01-31", "1234.57", "1000", "1469.13"}, rows[1])
}
