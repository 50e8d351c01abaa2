package insighting

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/ranking"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Nomes das abas no DashboardView.Errors
const (
	TabFilters     = "filtros"
	TabOverview    = "visao-geral"
	TabSalesperson = "vendedores"
	TabCategory    = "categorias"
	TabGeography   = "geografia"
	TabTeams       = "equipes"
)

const dayLayout = "2006-01-02"

// Service implementa Insighter
type Service struct {
	snapshots  recordstore.SnapshotProvider
	boundaries BoundaryProvider
	policy     domain.SelectionPolicy
}

// NewService cria uma nova instância do serviço de insights
func NewService(snapshots recordstore.SnapshotProvider, boundaries BoundaryProvider, policy domain.SelectionPolicy) *Service {
	return &Service{
		snapshots:  snapshots,
		boundaries: boundaries,
		policy:     policy,
	}
}

func (s *Service) Filters(ctx context.Context, category string) (*domain.FilterOptionSet, error) {
	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	opts := domain.FilterOptions(rs, category)
	return &opts, nil
}

func (s *Service) Overview(ctx context.Context, month string) (*domain.OverviewView, error) {
	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return overview(rs, month)
}

func (s *Service) Salesperson(ctx context.Context, salesperson, month string) (*domain.SalespersonView, error) {
	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.salesperson(rs, salesperson, month)
}

func (s *Service) Category(ctx context.Context, month, category, service string) (*domain.CategoryView, error) {
	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return categoryView(rs, month, category, service)
}

func (s *Service) Geography(ctx context.Context, month, metric string) (*domain.GeographyView, error) {
	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.geography(ctx, rs, month, metric)
}

func (s *Service) MonthlyByDimension(ctx context.Context, dim domain.Dimension, values []string) (*domain.DimensionSeriesView, error) {
	if _, err := domain.ParseDimension(string(dim)); err != nil {
		return nil, err
	}

	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	selected := s.policy.Select(dim, values)
	if len(selected) == 0 {
		selected = rs.Distinct(dim.Value, nil)
	}

	byKey := make(map[string][]domain.SaleRecord, len(selected))
	for _, r := range rs.Select(func(r domain.SaleRecord) bool { return slices.Contains(selected, dim.Value(r)) }) {
		k := dim.Value(r)
		byKey[k] = append(byKey[k], r)
	}

	view := &domain.DimensionSeriesView{
		Dimension: dim,
		Values:    selected,
		Series:    make([]domain.GroupSeries, 0, len(selected)),
	}
	for _, key := range selected {
		view.Series = append(view.Series, domain.GroupSeries{
			Key:    key,
			Points: monthlyTotals(byKey[key]),
		})
	}
	return view, nil
}

// Dashboard monta as abas em paralelo sobre o mesmo snapshot. A falha de uma aba
// é registrada em Errors e não interrompe as demais.
func (s *Service) Dashboard(ctx context.Context, req DashboardRequest) (*domain.DashboardView, error) {
	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := &domain.DashboardView{
		SnapshotID: rs.ID(),
		Filters:    domain.FilterOptions(rs, req.Category),
	}

	var mu sync.Mutex
	errs := map[string]domain.TabError{}
	record := func(tab string, err error) {
		if err == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		errs[tab] = domain.TabError{Code: apiErrors.CodeFor(err), Message: err.Error()}

		logrus.WithFields(logrus.Fields{
			"snapshot_id": rs.ID(),
			"tab":         tab,
		}).WithError(err).Warn("Falha ao montar aba do dashboard")
	}

	var g errgroup.Group

	g.Go(func() error {
		v, err := overview(rs, req.Month)
		view.Overview = v
		record(TabOverview, err)
		return nil
	})

	g.Go(func() error {
		v, err := s.salesperson(rs, req.Salesperson, req.Month)
		view.Salesperson = v
		record(TabSalesperson, err)
		return nil
	})

	g.Go(func() error {
		v, err := categoryView(rs, req.Month, req.Category, req.Service)
		view.Category = v
		record(TabCategory, err)
		return nil
	})

	g.Go(func() error {
		v, err := s.geography(ctx, rs, req.Month, req.Metric)
		view.Geography = v
		record(TabGeography, err)
		return nil
	})

	g.Go(func() error {
		v, err := ranking.RankRecords(rs, domain.DimensionTeam, req.Month)
		view.Teams = v
		record(TabTeams, err)
		return nil
	})

	_ = g.Wait()

	if len(errs) > 0 {
		view.Errors = errs
	}
	return view, nil
}

func overview(rs *domain.RecordSet, month string) (*domain.OverviewView, error) {
	ctx := domain.FilterContext{Month: month}
	rows := domain.ApplyFilter(rs, ctx)

	comparison, err := domain.Compare(rs, ctx, domain.CalendarStrategy{}, domain.Aggregate(rows))
	if err != nil {
		return nil, err
	}

	view := &domain.OverviewView{
		Month:      normalizeMonth(month),
		Comparison: comparison,
	}

	if domain.IsAll(month) {
		view.Granularity = domain.GranularityMonthly
		for _, m := range monthlyTotals(rows) {
			view.Series = append(view.Series, domain.SeriesPoint{Label: m.Month, Date: m.Date, Revenue: m.Revenue})
		}
	} else {
		view.Granularity = domain.GranularityDaily
		view.Series = dailySeries(rows)
	}
	if view.Series == nil {
		view.Series = []domain.SeriesPoint{}
	}

	return view, nil
}

func (s *Service) salesperson(rs *domain.RecordSet, salesperson, month string) (*domain.SalespersonView, error) {
	if salesperson == "" {
		salesperson = s.defaultSalesperson(rs)
	}

	ctx := domain.FilterContext{Month: month}.WithSalespeople(salesperson)
	comparison, err := domain.Compare(rs, ctx, domain.ObservedSequenceStrategy{}, domain.Aggregate(domain.ApplyFilter(rs, ctx)))
	if err != nil {
		return nil, err
	}

	months := rs.Distinct(func(r domain.SaleRecord) string { return r.MonthKey }, func(r domain.SaleRecord) bool {
		return r.Salesperson == salesperson
	})

	return &domain.SalespersonView{
		Salesperson: salesperson,
		Month:       normalizeMonth(month),
		Months:      months,
		Comparison:  comparison,
	}, nil
}

// defaultSalesperson usa o primeiro padrão configurado que existir nos dados, senão o primeiro em ordem alfabética
func (s *Service) defaultSalesperson(rs *domain.RecordSet) string {
	known := rs.Distinct(domain.DimensionSalesperson.Value, nil)
	for _, name := range s.policy.Salespeople(nil) {
		if slices.Contains(known, name) {
			return name
		}
	}
	if len(known) == 0 {
		return ""
	}
	return known[0]
}

func categoryView(rs *domain.RecordSet, month, category, service string) (*domain.CategoryView, error) {
	if category == "" {
		category = domain.AllCategories
	}
	service = domain.ResolveService(rs, category, service)

	ctx := domain.FilterContext{Month: month}.WithCategory(category).WithService(service)
	comparison, err := domain.Compare(rs, ctx, domain.CalendarStrategy{}, domain.Aggregate(domain.ApplyFilter(rs, ctx)))
	if err != nil {
		return nil, err
	}

	return &domain.CategoryView{
		Month:          normalizeMonth(month),
		Category:       category,
		Service:        service,
		ServiceOptions: append([]string{domain.AllServices}, domain.ServiceOptions(rs, category)...),
		Comparison:     comparison,
	}, nil
}

func (s *Service) geography(ctx context.Context, rs *domain.RecordSet, month, metric string) (*domain.GeographyView, error) {
	m, err := domain.ParseGeoMetric(metric)
	if err != nil {
		return nil, err
	}
	if !domain.IsAll(month) {
		if _, err := domain.ParseMonthKey(month); err != nil {
			return nil, err
		}
	}

	boundaries, err := s.boundaries.Boundaries(ctx)
	if err != nil {
		return nil, err
	}

	view := &domain.GeographyView{
		Month:     normalizeMonth(month),
		Metric:    m,
		States:    []domain.StateTotal{},
		Unmatched: []string{},
	}

	rows := domain.ApplyFilter(rs, domain.FilterContext{Month: month})
	for _, g := range domain.GroupBy(rows, domain.DimensionState.Value) {
		geometry, ok := boundaries.Features[strings.ToUpper(g.Key)]
		if !ok {
			view.Unmatched = append(view.Unmatched, g.Key)
			continue
		}

		view.States = append(view.States, domain.StateTotal{
			State:    g.Key,
			Revenue:  g.Revenue,
			Profit:   g.Profit,
			Cost:     g.Cost,
			Value:    metricValue(g, m),
			Geometry: geometry,
		})
	}

	return view, nil
}

func metricValue(g domain.GroupTotal, m domain.GeoMetric) float64 {
	switch m {
	case domain.GeoMetricProfit:
		return g.Profit
	case domain.GeoMetricCost:
		return g.Cost
	default:
		return g.Revenue
	}
}

// monthlyTotals soma o faturamento dos meses com vendas, em ordem cronológica
func monthlyTotals(rows []domain.SaleRecord) []domain.MonthlyRevenue {
	out := []domain.MonthlyRevenue{}
	for _, g := range domain.GroupBy(rows, func(r domain.SaleRecord) string { return r.MonthKey }) {
		start, err := domain.ParseMonthKey(g.Key)
		if err != nil {
			continue
		}
		out = append(out, domain.MonthlyRevenue{Month: g.Key, Date: domain.MonthEnd(start), Revenue: g.Revenue})
	}
	return out
}

func dailySeries(rows []domain.SaleRecord) []domain.SeriesPoint {
	days := make(map[string]domain.SaleRecord)
	for _, r := range rows {
		days[r.Day.Format(dayLayout)] = r
	}

	out := []domain.SeriesPoint{}
	for _, g := range domain.GroupBy(rows, func(r domain.SaleRecord) string { return r.Day.Format(dayLayout) }) {
		out = append(out, domain.SeriesPoint{Label: g.Key, Date: days[g.Key].Day, Revenue: g.Revenue})
	}
	return out
}

func normalizeMonth(month string) string {
	if domain.IsAll(month) {
		return domain.AllMonths
	}
	return month
}
