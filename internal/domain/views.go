package domain

import (
	"encoding/json"
	"time"
)

// Granularidade da série do gráfico da visão geral
const (
	GranularityMonthly = "mensal"
	GranularityDaily   = "diaria"
)

// SeriesPoint é um ponto de faturamento de um gráfico de linha
type SeriesPoint struct {
	Label   string    `json:"label"`
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// OverviewView é a aba de visão geral
type OverviewView struct {
	Month       string           `json:"month"`
	Comparison  ComparisonResult `json:"comparison"`
	Granularity string           `json:"granularity"`
	Series      []SeriesPoint    `json:"series"`
}

// SalespersonView é a aba de KPIs de um vendedor
type SalespersonView struct {
	Salesperson string           `json:"salesperson"`
	Month       string           `json:"month"`
	Months      []string         `json:"months"` // Meses com vendas do vendedor
	Comparison  ComparisonResult `json:"comparison"`
}

// CategoryView é a aba de categorias e serviços
type CategoryView struct {
	Month          string           `json:"month"`
	Category       string           `json:"category"`
	Service        string           `json:"service"`
	ServiceOptions []string         `json:"service_options"`
	Comparison     ComparisonResult `json:"comparison"`
}

// StateTotal são os totais de um estado junto com sua fronteira
type StateTotal struct {
	State    string          `json:"state"`
	Revenue  float64         `json:"revenue"`
	Profit   float64         `json:"profit"`
	Cost     float64         `json:"cost"`
	Value    float64         `json:"value"` // Valor da métrica selecionada
	Geometry json.RawMessage `json:"geometry,omitempty"`
}

// GeographyView é a aba geográfica
type GeographyView struct {
	Month     string       `json:"month"`
	Metric    GeoMetric    `json:"metric"`
	States    []StateTotal `json:"states"`
	Unmatched []string     `json:"unmatched"` // Estados sem fronteira, não exibidos no mapa
}

// BoundarySet são as fronteiras estaduais indexadas pela sigla
type BoundarySet struct {
	Key      string                     `json:"key"`
	Features map[string]json.RawMessage `json:"features"`
}

// GroupSeries é a série mensal de faturamento de um valor de dimensão
type GroupSeries struct {
	Key    string           `json:"key"`
	Points []MonthlyRevenue `json:"points"`
}

// DimensionSeriesView é o gráfico de tendência por dimensão
type DimensionSeriesView struct {
	Dimension Dimension     `json:"dimension"`
	Values    []string      `json:"values"`
	Series    []GroupSeries `json:"series"`
}

// TabError descreve a falha isolada de uma aba
type TabError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DashboardView agrega todas as abas; uma aba com erro não impede as demais
type DashboardView struct {
	SnapshotID  string              `json:"snapshot_id"`
	Filters     FilterOptionSet     `json:"filters"`
	Overview    *OverviewView       `json:"overview,omitempty"`
	Salesperson *SalespersonView    `json:"salesperson,omitempty"`
	Category    *CategoryView       `json:"category,omitempty"`
	Geography   *GeographyView      `json:"geography,omitempty"`
	Teams       *RankingView        `json:"teams,omitempty"`
	Errors      map[string]TabError `json:"errors,omitempty"`
}
