package domain

import (
	"math"
	"slices"
)

// StrategyName identifica a regra de período anterior
type StrategyName string

const (
	StrategyCalendar         StrategyName = "calendar"
	StrategyObservedSequence StrategyName = "observed_sequence"
)

// PeriodStrategy resolve o contexto do período anterior.
// O retorno ok=false suprime a comparação.
type PeriodStrategy interface {
	Name() StrategyName
	PreviousContext(rs *RecordSet, ctx FilterContext) (prev FilterContext, ok bool, err error)
}

// CalendarStrategy compara com o mês calendário anterior, reaplicando apenas categoria e serviço
type CalendarStrategy struct{}

func (CalendarStrategy) Name() StrategyName { return StrategyCalendar }

func (CalendarStrategy) PreviousContext(_ *RecordSet, ctx FilterContext) (FilterContext, bool, error) {
	if IsAll(ctx.Month) {
		return FilterContext{}, false, nil
	}

	previous, err := PreviousCalendarMonth(ctx.Month)
	if err != nil {
		return FilterContext{}, false, err
	}

	return FilterContext{
		Month:    previous,
		Category: ctx.Category,
		Service:  ctx.Service,
	}, true, nil
}

// PreviousCalendarMonth retorna o mês anterior no formato YYYY-MM
func PreviousCalendarMonth(month string) (string, error) {
	t, err := ParseMonthKey(month)
	if err != nil {
		return "", err
	}
	return MonthKey(t.AddDate(0, -1, 0)), nil
}

// ObservedSequenceStrategy compara com o último mês em que os vendedores selecionados tiveram vendas
type ObservedSequenceStrategy struct{}

func (ObservedSequenceStrategy) Name() StrategyName { return StrategyObservedSequence }

func (ObservedSequenceStrategy) PreviousContext(rs *RecordSet, ctx FilterContext) (FilterContext, bool, error) {
	if IsAll(ctx.Month) {
		return FilterContext{}, false, nil
	}
	if _, err := ParseMonthKey(ctx.Month); err != nil {
		return FilterContext{}, false, err
	}

	months := rs.Distinct(func(r SaleRecord) string { return r.MonthKey }, func(r SaleRecord) bool {
		return len(ctx.Salespeople) == 0 || slices.Contains(ctx.Salespeople, r.Salesperson)
	})

	idx := slices.Index(months, ctx.Month)
	if idx <= 0 {
		return FilterContext{}, false, nil
	}

	return FilterContext{
		Month:       months[idx-1],
		Salespeople: slices.Clone(ctx.Salespeople),
	}, true, nil
}

// KpiChanges guarda a variação percentual de cada indicador; nil significa variação indefinida
type KpiChanges struct {
	TotalRevenue       *float64 `json:"total_revenue"`
	TotalProfit        *float64 `json:"total_profit"`
	TotalQuantity      *float64 `json:"total_quantity"`
	TotalCost          *float64 `json:"total_cost"`
	DistinctCustomers  *float64 `json:"distinct_customers"`
	AverageTicket      *float64 `json:"average_ticket"`
	ProfitMarginPct    *float64 `json:"profit_margin_pct"`
	AverageRowRevenue  *float64 `json:"average_row_revenue"`
	RevenuePerCustomer *float64 `json:"revenue_per_customer"`
}

// ComparisonResult junta os indicadores atuais com os do período anterior
type ComparisonResult struct {
	Current       KpiBundle    `json:"current"`
	Previous      *KpiBundle   `json:"previous,omitempty"`
	PreviousMonth string       `json:"previous_month,omitempty"`
	Strategy      StrategyName `json:"strategy"`
	Changes       *KpiChanges  `json:"changes,omitempty"`
}

// Compared indica se houve período anterior
func (c ComparisonResult) Compared() bool {
	return c.Changes != nil
}

// Compare resolve o período anterior pela estratégia e calcula as variações
func Compare(rs *RecordSet, ctx FilterContext, strategy PeriodStrategy, current KpiBundle) (ComparisonResult, error) {
	result := ComparisonResult{Current: current, Strategy: strategy.Name()}

	prevCtx, ok, err := strategy.PreviousContext(rs, ctx)
	if err != nil {
		return result, err
	}
	if !ok {
		return result, nil
	}

	previous := Aggregate(ApplyFilter(rs, prevCtx))
	changes := ChangesBetween(current, previous)

	result.Previous = &previous
	result.PreviousMonth = prevCtx.Month
	result.Changes = &changes
	return result, nil
}

// ChangesBetween calcula a variação percentual de cada indicador
func ChangesBetween(current, previous KpiBundle) KpiChanges {
	return KpiChanges{
		TotalRevenue:       PercentChange(current.TotalRevenue, previous.TotalRevenue),
		TotalProfit:        PercentChange(current.TotalProfit, previous.TotalProfit),
		TotalQuantity:      PercentChange(float64(current.TotalQuantity), float64(previous.TotalQuantity)),
		TotalCost:          PercentChange(current.TotalCost, previous.TotalCost),
		DistinctCustomers:  PercentChange(float64(current.DistinctCustomers), float64(previous.DistinctCustomers)),
		AverageTicket:      PercentChange(current.AverageTicket, previous.AverageTicket),
		ProfitMarginPct:    PercentChange(current.ProfitMarginPct, previous.ProfitMarginPct),
		AverageRowRevenue:  PercentChange(current.AverageRowRevenue, previous.AverageRowRevenue),
		RevenuePerCustomer: PercentChange(current.RevenuePerCustomer, previous.RevenuePerCustomer),
	}
}

// PercentChange retorna (atual - anterior) / anterior * 100, ou nil quando o anterior é zero ou não finito
func PercentChange(current, previous float64) *float64 {
	if previous == 0 || math.IsNaN(previous) || math.IsInf(previous, 0) || math.IsNaN(current) || math.IsInf(current, 0) {
		return nil
	}
	change := (current - previous) / previous * 100
	return &change
}
