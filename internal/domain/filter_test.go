package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFilter(t *testing.T) {
	rs := newRecordSet(
		saleFixture{date: "2024-01-10", qty: 1, price: 10, seller: "Ana", team: "Norte", state: "SP", category: "Backup", service: "Backup em Nuvem"},
		saleFixture{date: "2024-01-20", qty: 1, price: 20, seller: "Bia", team: "Sul", state: "RJ", category: "Redes", service: "Firewall"},
		saleFixture{date: "2024-02-05", qty: 1, price: 30, seller: "Ana", team: "Norte", state: "SP", category: "Backup", service: "Backup Local"},
	)

	tests := []struct {
		name     string
		filter   FilterContext
		expected int
	}{
		{name: "Sem filtro", filter: FilterContext{}, expected: 3},
		{name: "Sentinelas significam todos", filter: FilterContext{Month: AllMonths, Category: AllCategories, Service: AllServices, Team: AllTeams}, expected: 3},
		{name: "Mês específico", filter: FilterContext{Month: "2024-01"}, expected: 2},
		{name: "Vendedores por pertinência", filter: FilterContext{Salespeople: []string{"Ana", "Zeca"}}, expected: 2},
		{name: "Dimensões combinadas com E", filter: FilterContext{Month: "2024-01", Category: "Backup"}, expected: 1},
		{name: "Equipe e estado", filter: FilterContext{Team: "Sul", State: "RJ"}, expected: 1},
		{name: "Nenhuma venda", filter: FilterContext{Month: "2024-02", Service: "Firewall"}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ApplyFilter(rs, tt.filter), tt.expected)
		})
	}
}

func TestServiceOptions(t *testing.T) {
	rs := newRecordSet(
		saleFixture{date: "2024-01-10", qty: 1, price: 10, category: "Backup", service: "Backup em Nuvem"},
		saleFixture{date: "2024-01-11", qty: 1, price: 10, category: "Backup", service: "Backup Local"},
		saleFixture{date: "2024-01-12", qty: 1, price: 10, category: "Redes", service: "Firewall"},
	)

	assert.Equal(t, []string{"Backup Local", "Backup em Nuvem"}, ServiceOptions(rs, "Backup"))
	assert.Equal(t, []string{"Backup Local", "Backup em Nuvem", "Firewall"}, ServiceOptions(rs, AllCategories))

	t.Run("Serviço inválido para a categoria volta para todos", func(t *testing.T) {
		assert.Equal(t, AllServices, ResolveService(rs, "Backup", "Firewall"))
		assert.Equal(t, "Backup Local", ResolveService(rs, "Backup", "Backup Local"))
		assert.Equal(t, "Firewall", ResolveService(rs, AllCategories, "Firewall"))
		assert.Equal(t, AllServices, ResolveService(rs, AllCategories, "Inexistente"))
	})

	t.Run("Opções dos seletores", func(t *testing.T) {
		opts := FilterOptions(rs, "Redes")
		assert.Equal(t, []string{AllMonths, "2024-01"}, opts.Months)
		assert.Equal(t, []string{AllCategories, "Backup", "Redes"}, opts.Categories)
		assert.Equal(t, []string{AllServices, "Firewall"}, opts.Services)
		assert.Equal(t, GeoMetrics, opts.Metrics)
	})
}

func TestFilterContext_WithIsCopy(t *testing.T) {
	base := FilterContext{Month: "2024-01", Salespeople: []string{"Ana"}}

	changed := base.WithSalespeople("Bia").WithMonth("2024-02")
	changed.Salespeople[0] = "Caio"

	assert.Equal(t, "2024-01", base.Month)
	assert.Equal(t, []string{"Ana"}, base.Salespeople)
	assert.Equal(t, "2024-02", changed.Month)
}

func TestSelectionPolicy(t *testing.T) {
	policy := SelectionPolicy{DefaultSalespeople: []string{"Sarah"}}

	assert.Equal(t, []string{"Sarah"}, policy.Select(DimensionSalesperson, nil))
	assert.Equal(t, []string{"Ana"}, policy.Select(DimensionSalesperson, []string{"Ana"}))
	assert.Empty(t, policy.Select(DimensionService, nil))
	assert.Empty(t, policy.Select(DimensionTeam, nil))
}

func TestParseDimensionAndMetric(t *testing.T) {
	d, err := ParseDimension("equipe")
	assert.NoError(t, err)
	assert.Equal(t, DimensionTeam, d)

	_, err = ParseDimension("cliente")
	assert.ErrorIs(t, err, ErrInvalidDimension)

	m, err := ParseGeoMetric("")
	assert.NoError(t, err)
	assert.Equal(t, GeoMetricRevenue, m)

	_, err = ParseGeoMetric("margem")
	assert.ErrorIs(t, err, ErrInvalidMetric)
}
