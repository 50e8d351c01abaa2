package forecasting

import (
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/shopspring/decimal"
)

// ResampleMonthly soma o faturamento por mês, do primeiro ao último mês com vendas.
// Meses sem vendas aparecem com faturamento zero.
func ResampleMonthly(rows []domain.SaleRecord) []domain.MonthlyRevenue {
	if len(rows) == 0 {
		return []domain.MonthlyRevenue{}
	}

	totals := make(map[int]decimal.Decimal)
	first, last := monthIndex(rows[0].SaleDate), monthIndex(rows[0].SaleDate)
	for _, r := range rows {
		idx := monthIndex(r.SaleDate)
		totals[idx] = totals[idx].Add(r.Revenue)
		if idx < first {
			first = idx
		}
		if idx > last {
			last = idx
		}
	}

	series := make([]domain.MonthlyRevenue, 0, last-first+1)
	for idx := first; idx <= last; idx++ {
		start := monthStart(idx)
		series = append(series, domain.MonthlyRevenue{
			Month:   domain.MonthKey(start),
			Date:    domain.MonthEnd(start),
			Revenue: totals[idx].InexactFloat64(),
		})
	}
	return series
}

// monthIndex é o índice absoluto do mês (ano*12 + mês-1)
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func monthStart(idx int) time.Time {
	return time.Date(idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, time.UTC)
}
