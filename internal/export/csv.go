package export

import (
	"encoding/csv"
	"io"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/presenter"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var forecastHeader = []string{"mes", "data", "faturamento_previsto", "limite_inferior", "limite_superior"}

// WriteForecastCSV grava a tabela de meses previstos
func WriteForecastCSV(w io.Writer, points []domain.ForecastPoint) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(forecastHeader); err != nil {
		return err
	}
	for _, point := range points {
		if err := writer.Write(forecastRow(point)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteKpiCSV grava os cards de KPI de um mês
func WriteKpiCSV(w io.Writer, month string, cards []presenter.KpiCard) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"indicador", "valor", "variacao"}); err != nil {
		return err
	}
	if err := writer.Write([]string{"Mês", month, ""}); err != nil {
		return err
	}
	for _, card := range cards {
		if err := writer.Write([]string{card.Title, card.Value, card.Change}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func forecastRow(point domain.ForecastPoint) []string {
	return []string{
		point.Month,
		point.Date.Format(dateLayout),
		formatFloat(point.PredictedRevenue),
		formatFloat(point.LowerBound),
		formatFloat(point.UpperBound),
	}
}

func formatFloat(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
