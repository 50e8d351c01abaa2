package export

import (
	"fmt"
	"io"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const forecastSheet = "Previsao"

// WriteForecastXLSX grava a tabela de meses previstos em uma planilha
func WriteForecastXLSX(w io.Writer, points []domain.ForecastPoint) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), forecastSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(forecastSheet, "A1", &forecastHeader); err != nil {
		return err
	}

	for i, point := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			point.Month,
			point.Date.Format(dateLayout),
			utils.RoundWithTwoDecimalPlace(point.PredictedRevenue),
			utils.RoundWithTwoDecimalPlace(point.LowerBound),
			utils.RoundWithTwoDecimalPlace(point.UpperBound),
		}
		if err := f.SetSheetRow(forecastSheet, cell, &row); err != nil {
			return fmt.Errorf("writing forecast row %d: %w", i+1, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
