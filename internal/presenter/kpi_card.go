package presenter

import (
	"math"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Rótulo e cores da variação
const (
	PreviousMonthLabel = "Mês anterior"
	NoChange           = "–"
	ColorPositive      = "green"
	ColorNegative      = "red"
)

var printer = message.NewPrinter(language.English)

// KpiCard é um indicador pronto para exibição
type KpiCard struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	Color       string `json:"color,omitempty"`
	ChangeLabel string `json:"change_label,omitempty"`
}

// NewCard formata a variação; sem variação definida o card mostra "–" sem rótulo
func NewCard(title, value string, change *float64) KpiCard {
	card := KpiCard{Title: title, Value: value, Change: NoChange}
	if change == nil || math.IsNaN(*change) || math.IsInf(*change, 0) {
		return card
	}

	card.Change, card.Color = FormatChange(*change)
	card.ChangeLabel = PreviousMonthLabel
	return card
}

// Money formata valores monetários: R$ 1,234.56
func Money(v float64) string {
	return printer.Sprintf("R$ %.2f", clean(v))
}

// Units formata quantidades: 1,234 Un
func Units(v float64) string {
	return Count(v) + " Un"
}

// Count formata contagens sem unidade: 1,234
func Count(v float64) string {
	return printer.Sprintf("%.0f", clean(v))
}

// Percent formata percentuais: 12.34 %
func Percent(v float64) string {
	return printer.Sprintf("%.2f %%", clean(v))
}

// FormatChange retorna +12.34% em verde ou -3.00% em vermelho
func FormatChange(v float64) (string, string) {
	v = clean(v)
	if v >= 0 {
		return printer.Sprintf("+%.2f%%", v), ColorPositive
	}
	return printer.Sprintf("%.2f%%", v), ColorNegative
}

// clean evita "-0.00"
func clean(v float64) float64 {
	if v == 0 || math.Abs(v) < 0.005 {
		return 0
	}
	return v
}

// OverviewCards são os oito indicadores da visão geral
func OverviewCards(c domain.ComparisonResult) []KpiCard {
	cur, ch := c.Current, changes(c)
	return []KpiCard{
		NewCard("Faturamento Total", Money(cur.TotalRevenue), ch.TotalRevenue),
		NewCard("Lucro Total", Money(cur.TotalProfit), ch.TotalProfit),
		NewCard("Quantidade de Vendas", Units(float64(cur.TotalQuantity)), ch.TotalQuantity),
		NewCard("Ticket Médio", Money(cur.AverageTicket), ch.AverageTicket),
		NewCard("Margem de Lucro", Percent(cur.ProfitMarginPct), ch.ProfitMarginPct),
		NewCard("Custo Total", Money(cur.TotalCost), ch.TotalCost),
		NewCard("Clientes Ativos", Count(float64(cur.DistinctCustomers)), ch.DistinctCustomers),
		NewCard("Venda Média por Cliente", Money(cur.RevenuePerCustomer), ch.RevenuePerCustomer),
	}
}

// SalespersonCards são os seis indicadores do vendedor
func SalespersonCards(c domain.ComparisonResult) []KpiCard {
	cur, ch := c.Current, changes(c)
	return []KpiCard{
		NewCard("Faturamento Total", Money(cur.TotalRevenue), ch.TotalRevenue),
		NewCard("Margem de Lucro", Percent(cur.ProfitMarginPct), ch.ProfitMarginPct),
		NewCard("Lucro do Vendedor", Money(cur.TotalProfit), ch.TotalProfit),
		NewCard("Quantidade de Vendas", Units(float64(cur.TotalQuantity)), ch.TotalQuantity),
		NewCard("Média da Venda", Money(cur.AverageRowRevenue), ch.AverageRowRevenue),
		NewCard("Total de Clientes", Units(float64(cur.DistinctCustomers)), ch.DistinctCustomers),
	}
}

// CategoryCards são os cinco indicadores de categoria e serviço
func CategoryCards(c domain.ComparisonResult) []KpiCard {
	cur, ch := c.Current, changes(c)
	return []KpiCard{
		NewCard("Faturamento Total", Money(cur.TotalRevenue), ch.TotalRevenue),
		NewCard("Lucro Total", Money(cur.TotalProfit), ch.TotalProfit),
		NewCard("Quantidade Vendida", Units(float64(cur.TotalQuantity)), ch.TotalQuantity),
		NewCard("Ticket Médio", Money(cur.AverageTicket), ch.AverageTicket),
		NewCard("Margem de Lucro", Percent(cur.ProfitMarginPct), ch.ProfitMarginPct),
	}
}

func changes(c domain.ComparisonResult) domain.KpiChanges {
	if c.Changes == nil {
		return domain.KpiChanges{}
	}
	return *c.Changes
}
