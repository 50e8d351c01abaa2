package insighting

import (
	"context"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
)

// BoundaryProvider fornece as fronteiras estaduais do mapa
type BoundaryProvider interface {
	Boundaries(ctx context.Context) (domain.BoundarySet, error)
}

// DashboardRequest reúne as seleções de todas as abas do dashboard
type DashboardRequest struct {
	Month       string
	Salesperson string
	Category    string
	Service     string
	Metric      string
}

// Insighter monta as visões do dashboard a partir do snapshot atual
type Insighter interface {
	// Filters retorna as opções dos seletores, com serviços dependentes da categoria
	Filters(ctx context.Context, category string) (*domain.FilterOptionSet, error)

	// Overview retorna os KPIs gerais e a série de faturamento (mensal ou diária)
	Overview(ctx context.Context, month string) (*domain.OverviewView, error)

	// Salesperson retorna os KPIs de um vendedor comparados com o último mês em que ele vendeu
	Salesperson(ctx context.Context, salesperson, month string) (*domain.SalespersonView, error)

	// Category retorna os KPIs de categoria e serviço
	Category(ctx context.Context, month, category, service string) (*domain.CategoryView, error)

	// Geography retorna os totais por estado junto com as fronteiras
	Geography(ctx context.Context, month, metric string) (*domain.GeographyView, error)

	// MonthlyByDimension retorna o faturamento mensal por valor de dimensão
	MonthlyByDimension(ctx context.Context, dim domain.Dimension, values []string) (*domain.DimensionSeriesView, error)

	// Dashboard monta todas as abas sobre o mesmo snapshot
	Dashboard(ctx context.Context, req DashboardRequest) (*domain.DashboardView, error)
}
