package presenter

import (
	"math"
	"testing"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestFormatters(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "Dinheiro com milhar", got: Money(1234.56), expected: "R$ 1,234.56"},
		{name: "Dinheiro arredonda", got: Money(0.005), expected: "R$ 0.00"},
		{name: "Dinheiro negativo", got: Money(-1500), expected: "R$ -1,500.00"},
		{name: "Unidades", got: Units(1234), expected: "1,234 Un"},
		{name: "Contagem", got: Count(12), expected: "12"},
		{name: "Percentual", got: Percent(12.344), expected: "12.34 %"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestNewCard(t *testing.T) {
	tests := []struct {
		name          string
		change        *float64
		expectedText  string
		expectedColor string
		expectedLabel string
	}{
		{name: "Alta em verde", change: ptr(12.344), expectedText: "+12.34%", expectedColor: ColorPositive, expectedLabel: PreviousMonthLabel},
		{name: "Queda em vermelho", change: ptr(-3), expectedText: "-3.00%", expectedColor: ColorNegative, expectedLabel: PreviousMonthLabel},
		{name: "Zero definido é positivo", change: ptr(0), expectedText: "+0.00%", expectedColor: ColorPositive, expectedLabel: PreviousMonthLabel},
		{name: "Sem variação", change: nil, expectedText: NoChange},
		{name: "Variação não finita", change: ptr(math.Inf(1)), expectedText: NoChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := NewCard("Faturamento Total", "R$ 1.00", tt.change)
			assert.Equal(t, tt.expectedText, card.Change)
			assert.Equal(t, tt.expectedColor, card.Color)
			assert.Equal(t, tt.expectedLabel, card.ChangeLabel)
		})
	}
}

func TestCardSets(t *testing.T) {
	comparison := domain.ComparisonResult{
		Current: domain.KpiBundle{
			TotalRevenue:      200,
			TotalProfit:       120,
			TotalQuantity:     1234,
			DistinctCustomers: 3,
			ProfitMarginPct:   60,
		},
		Changes: &domain.KpiChanges{TotalRevenue: ptr(0), TotalProfit: ptr(20)},
	}

	overview := OverviewCards(comparison)
	require.Len(t, overview, 8)
	assert.Equal(t, KpiCard{Title: "Faturamento Total", Value: "R$ 200.00", Change: "+0.00%", Color: ColorPositive, ChangeLabel: PreviousMonthLabel}, overview[0])
	assert.Equal(t, "+20.00%", overview[1].Change)
	assert.Equal(t, "1,234 Un", overview[2].Value)
	assert.Equal(t, NoChange, overview[2].Change)
	assert.Equal(t, "60.00 %", overview[4].Value)
	assert.Equal(t, "3", overview[6].Value)

	sales := SalespersonCards(comparison)
	require.Len(t, sales, 6)
	assert.Equal(t, "3 Un", sales[5].Value)

	category := CategoryCards(domain.ComparisonResult{Current: comparison.Current})
	require.Len(t, category, 5)
	for _, c := range category {
		assert.Equal(t, NoChange, c.Change)
	}
}
