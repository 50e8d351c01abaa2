package domain

import (
	"slices"
)

// Valores sentinela usados pelos seletores do dashboard
const (
	AllMonths     = "Todos"
	AllCategories = "Todas"
	AllServices   = "Todos"
	AllStates     = "Todos"
	AllTeams      = "Todas"
)

// GeoMetric é a métrica exibida no mapa
type GeoMetric string

const (
	GeoMetricRevenue GeoMetric = "faturamento"
	GeoMetricProfit  GeoMetric = "lucro"
	GeoMetricCost    GeoMetric = "custo"
)

// GeoMetrics lista as métricas aceitas pelo mapa
var GeoMetrics = []GeoMetric{GeoMetricRevenue, GeoMetricProfit, GeoMetricCost}

// ParseGeoMetric valida a métrica do mapa; vazio assume faturamento
func ParseGeoMetric(v string) (GeoMetric, error) {
	if v == "" {
		return GeoMetricRevenue, nil
	}
	m := GeoMetric(v)
	if !slices.Contains(GeoMetrics, m) {
		return "", ErrInvalidMetric
	}
	return m, nil
}

// IsAll indica se o valor do seletor significa "sem filtro"
func IsAll(v string) bool {
	return v == "" || v == AllMonths || v == AllCategories
}

// FilterContext é o conjunto imutável de seleções ativas de um painel
type FilterContext struct {
	Month       string    `json:"month"`
	Salespeople []string  `json:"salespeople,omitempty"`
	Team        string    `json:"team,omitempty"`
	Category    string    `json:"category,omitempty"`
	Service     string    `json:"service,omitempty"`
	State       string    `json:"state,omitempty"`
	Metric      GeoMetric `json:"metric,omitempty"`
}

// WithMonth retorna uma cópia com outro mês
func (f FilterContext) WithMonth(month string) FilterContext {
	c := f.clone()
	c.Month = month
	return c
}

// WithSalespeople retorna uma cópia com outra seleção de vendedores
func (f FilterContext) WithSalespeople(names ...string) FilterContext {
	c := f.clone()
	c.Salespeople = slices.Clone(names)
	return c
}

// WithCategory retorna uma cópia com outra categoria
func (f FilterContext) WithCategory(category string) FilterContext {
	c := f.clone()
	c.Category = category
	return c
}

// WithService retorna uma cópia com outro serviço
func (f FilterContext) WithService(service string) FilterContext {
	c := f.clone()
	c.Service = service
	return c
}

func (f FilterContext) clone() FilterContext {
	c := f
	c.Salespeople = slices.Clone(f.Salespeople)
	return c
}

// Matches aplica todas as dimensões com E lógico
func (f FilterContext) Matches(r SaleRecord) bool {
	if !IsAll(f.Month) && r.MonthKey != f.Month {
		return false
	}
	if len(f.Salespeople) > 0 && !slices.Contains(f.Salespeople, r.Salesperson) {
		return false
	}
	if !IsAll(f.Team) && r.Team != f.Team {
		return false
	}
	if !IsAll(f.Category) && r.ServiceCategory != f.Category {
		return false
	}
	if !IsAll(f.Service) && r.Service != f.Service {
		return false
	}
	if !IsAll(f.State) && r.State != f.State {
		return false
	}
	return true
}

// ApplyFilter retorna o subconjunto de vendas que satisfaz o contexto
func ApplyFilter(rs *RecordSet, f FilterContext) []SaleRecord {
	return rs.Select(f.Matches)
}

// ServiceOptions retorna os serviços selecionáveis para a categoria
func ServiceOptions(rs *RecordSet, category string) []string {
	if IsAll(category) {
		return rs.Distinct(serviceOf, nil)
	}
	return rs.Distinct(serviceOf, func(r SaleRecord) bool { return r.ServiceCategory == category })
}

// ResolveService descarta um serviço que não pertence à categoria selecionada
func ResolveService(rs *RecordSet, category, service string) string {
	if IsAll(service) {
		return AllServices
	}
	if !slices.Contains(ServiceOptions(rs, category), service) {
		return AllServices
	}
	return service
}

func serviceOf(r SaleRecord) string { return r.Service }

// FilterOptionSet lista as opções de todos os seletores
type FilterOptionSet struct {
	Months      []string    `json:"months"`
	Salespeople []string    `json:"salespeople"`
	Teams       []string    `json:"teams"`
	Categories  []string    `json:"categories"`
	Services    []string    `json:"services"`
	States      []string    `json:"states"`
	Metrics     []GeoMetric `json:"metrics"`
}

// FilterOptions monta as opções dos seletores, com serviços dependentes da categoria
func FilterOptions(rs *RecordSet, category string) FilterOptionSet {
	return FilterOptionSet{
		Months:      append([]string{AllMonths}, rs.Months()...),
		Salespeople: rs.Distinct(DimensionSalesperson.Value, nil),
		Teams:       rs.Distinct(DimensionTeam.Value, nil),
		Categories:  append([]string{AllCategories}, rs.Distinct(DimensionCategory.Value, nil)...),
		Services:    append([]string{AllServices}, ServiceOptions(rs, category)...),
		States:      rs.Distinct(DimensionState.Value, nil),
		Metrics:     slices.Clone(GeoMetrics),
	}
}

// SelectionPolicy define as seleções padrão dos seletores múltiplos
type SelectionPolicy struct {
	DefaultSalespeople []string
	DefaultServices    []string
}

// Salespeople aplica o padrão quando a seleção está vazia
func (p SelectionPolicy) Salespeople(selected []string) []string {
	if len(selected) > 0 {
		return slices.Clone(selected)
	}
	return slices.Clone(p.DefaultSalespeople)
}

// Services aplica o padrão quando a seleção está vazia
func (p SelectionPolicy) Services(selected []string) []string {
	if len(selected) > 0 {
		return slices.Clone(selected)
	}
	return slices.Clone(p.DefaultServices)
}

// Select aplica o padrão da dimensão; dimensões sem padrão ficam sem filtro
func (p SelectionPolicy) Select(dim Dimension, selected []string) []string {
	switch dim {
	case DimensionSalesperson:
		return p.Salespeople(selected)
	case DimensionService:
		return p.Services(selected)
	default:
		return slices.Clone(selected)
	}
}

// Dimension é uma dimensão categórica das vendas
type Dimension string

const (
	DimensionSalesperson Dimension = "vendedor"
	DimensionTeam        Dimension = "equipe"
	DimensionCategory    Dimension = "categoria"
	DimensionService     Dimension = "servico"
	DimensionState       Dimension = "estado"
)

// ParseDimension valida o nome da dimensão
func ParseDimension(v string) (Dimension, error) {
	switch d := Dimension(v); d {
	case DimensionSalesperson, DimensionTeam, DimensionCategory, DimensionService, DimensionState:
		return d, nil
	}
	return "", ErrInvalidDimension
}

// Value extrai o valor da dimensão de uma venda
func (d Dimension) Value(r SaleRecord) string {
	switch d {
	case DimensionSalesperson:
		return r.Salesperson
	case DimensionTeam:
		return r.Team
	case DimensionCategory:
		return r.ServiceCategory
	case DimensionService:
		return r.Service
	case DimensionState:
		return r.State
	}
	return ""
}
