package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// KpiBundle é o conjunto de indicadores calculado sobre um subconjunto de vendas.
// Toda razão com denominador zero vale exatamente 0.
type KpiBundle struct {
	TotalRevenue       float64 `json:"total_revenue"`
	TotalProfit        float64 `json:"total_profit"`
	TotalQuantity      int64   `json:"total_quantity"`
	TotalCost          float64 `json:"total_cost"`
	DistinctCustomers  int     `json:"distinct_customers"`
	RowCount           int     `json:"row_count"`
	AverageTicket      float64 `json:"average_ticket"`
	ProfitMarginPct    float64 `json:"profit_margin_pct"`
	AverageRowRevenue  float64 `json:"average_row_revenue"`
	RevenuePerCustomer float64 `json:"revenue_per_customer"`
}

// Aggregate soma as vendas e deriva as razões
func Aggregate(rows []SaleRecord) KpiBundle {
	revenue := decimal.Zero
	profit := decimal.Zero
	cost := decimal.Zero
	var quantity int64
	customers := make(map[string]struct{})

	for _, r := range rows {
		revenue = revenue.Add(r.Revenue)
		profit = profit.Add(r.Profit)
		cost = cost.Add(r.Cost)
		quantity += r.Quantity
		customers[r.CustomerID] = struct{}{}
	}

	return KpiBundle{
		TotalRevenue:       revenue.InexactFloat64(),
		TotalProfit:        profit.InexactFloat64(),
		TotalQuantity:      quantity,
		TotalCost:          cost.InexactFloat64(),
		DistinctCustomers:  len(customers),
		RowCount:           len(rows),
		AverageTicket:      ratio(revenue, decimal.NewFromInt(quantity)),
		ProfitMarginPct:    ratio(profit.Mul(hundred), revenue),
		AverageRowRevenue:  ratio(revenue, decimal.NewFromInt(int64(len(rows)))),
		RevenuePerCustomer: ratio(revenue, decimal.NewFromInt(int64(len(customers)))),
	}
}

func ratio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.DivRound(den, 10).InexactFloat64()
}

// GroupTotal é o total de uma métrica para um valor de dimensão
type GroupTotal struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Cost    float64 `json:"cost"`
}

// GroupBy soma faturamento, lucro e custo por valor de dimensão, em ordem alfabética
func GroupBy(rows []SaleRecord, key func(SaleRecord) string) []GroupTotal {
	type acc struct{ revenue, profit, cost decimal.Decimal }
	groups := make(map[string]*acc)
	keys := make([]string, 0)

	for _, r := range rows {
		k := key(r)
		g, ok := groups[k]
		if !ok {
			g = &acc{revenue: decimal.Zero, profit: decimal.Zero, cost: decimal.Zero}
			groups[k] = g
			keys = append(keys, k)
		}
		g.revenue = g.revenue.Add(r.Revenue)
		g.profit = g.profit.Add(r.Profit)
		g.cost = g.cost.Add(r.Cost)
	}

	sortStrings(keys)
	out := make([]GroupTotal, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		out = append(out, GroupTotal{
			Key:     k,
			Revenue: g.revenue.InexactFloat64(),
			Profit:  g.profit.InexactFloat64(),
			Cost:    g.cost.InexactFloat64(),
		})
	}
	return out
}
