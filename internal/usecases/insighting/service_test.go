package insighting_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/insighting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/insighting/mocks"
	storemocks "github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore/mocks"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/apiErrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sale(date string, qty, price, cost int64, seller, team, customer, state, category, service string) domain.SaleRecord {
	d, _ := time.Parse("2006-01-02", date)
	return domain.NewSaleRecord(domain.SaleInput{
		SaleDate:        d,
		Quantity:        qty,
		UnitPrice:       decimal.NewFromInt(price),
		Cost:            decimal.NewFromInt(cost),
		Salesperson:     seller,
		Team:            team,
		CustomerID:      customer,
		State:           state,
		Service:         service,
		ServiceCategory: category,
	})
}

// Sarah vende em 2024-03 e 2024-05; Pedro em 2024-04 e 2024-05
func fixture() *domain.RecordSet {
	return domain.NewRecordSet("snap-1", "test", "fp", []domain.SaleRecord{
		sale("2024-03-05", 2, 100, 80, "Sarah", "Norte", "C1", "SP", "Backup", "Backup em Nuvem"),
		sale("2024-04-15", 3, 50, 60, "Pedro", "Sul", "C3", "SP", "Backup", "Backup Local"),
		sale("2024-05-10", 1, 200, 50, "Sarah", "Norte", "C2", "RJ", "Redes", "Firewall"),
		sale("2024-05-20", 1, 100, 40, "Pedro", "Sul", "C1", "MG", "Backup", "Backup Local"),
	})
}

type testEnv struct {
	svc        *insighting.Service
	boundaries *mocks.MockBoundaryProvider
}

func newEnv(t *testing.T, policy domain.SelectionPolicy) testEnv {
	ctrl := gomock.NewController(t)
	snapshots := storemocks.NewMockSnapshotProvider(ctrl)
	snapshots.EXPECT().Snapshot(gomock.Any()).Return(fixture(), nil).AnyTimes()
	boundaries := mocks.NewMockBoundaryProvider(ctrl)

	return testEnv{
		svc:        insighting.NewService(snapshots, boundaries, policy),
		boundaries: boundaries,
	}
}

func boundarySet(states ...string) domain.BoundarySet {
	features := make(map[string]json.RawMessage, len(states))
	for _, s := range states {
		features[s] = json.RawMessage(`{"type":"Polygon","coordinates":[]}`)
	}
	return domain.BoundarySet{Key: "sigla", Features: features}
}

func TestService_Overview(t *testing.T) {
	env := newEnv(t, domain.SelectionPolicy{})

	t.Run("Todos os meses usa série mensal e não compara", func(t *testing.T) {
		view, err := env.svc.Overview(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, domain.AllMonths, view.Month)
		assert.Equal(t, domain.GranularityMonthly, view.Granularity)
		assert.False(t, view.Comparison.Compared())
		assert.Equal(t, 650.0, view.Comparison.Current.TotalRevenue)

		require.Len(t, view.Series, 3)
		assert.Equal(t, "2024-03", view.Series[0].Label)
		assert.Equal(t, 200.0, view.Series[0].Revenue)
		assert.Equal(t, 150.0, view.Series[1].Revenue)
		assert.Equal(t, 300.0, view.Series[2].Revenue)
	})

	t.Run("Mês específico usa série diária e mês calendário anterior", func(t *testing.T) {
		view, err := env.svc.Overview(context.Background(), "2024-05")
		require.NoError(t, err)

		assert.Equal(t, domain.GranularityDaily, view.Granularity)
		require.Len(t, view.Series, 2)
		assert.Equal(t, "2024-05-10", view.Series[0].Label)
		assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), view.Series[0].Date)
		assert.Equal(t, 100.0, view.Series[1].Revenue)

		require.True(t, view.Comparison.Compared())
		assert.Equal(t, "2024-04", view.Comparison.PreviousMonth)
		assert.InDelta(t, 100.0, *view.Comparison.Changes.TotalRevenue, 1e-9)
	})

	t.Run("Mês malformado", func(t *testing.T) {
		_, err := env.svc.Overview(context.Background(), "maio")
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})
}

func TestService_Salesperson(t *testing.T) {
	t.Run("Compara com o último mês em que o vendedor vendeu", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{})

		view, err := env.svc.Salesperson(context.Background(), "Sarah", "2024-05")
		require.NoError(t, err)

		assert.Equal(t, []string{"2024-03", "2024-05"}, view.Months)
		assert.Equal(t, "2024-03", view.Comparison.PreviousMonth)
		assert.Equal(t, domain.StrategyObservedSequence, view.Comparison.Strategy)
		assert.InDelta(t, 0.0, *view.Comparison.Changes.TotalRevenue, 1e-9)
		assert.InDelta(t, 25.0, *view.Comparison.Changes.TotalProfit, 1e-9)
	})

	t.Run("Primeiro mês do vendedor não tem comparação", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{})

		view, err := env.svc.Salesperson(context.Background(), "Pedro", "2024-04")
		require.NoError(t, err)
		assert.False(t, view.Comparison.Compared())
		assert.Equal(t, 150.0, view.Comparison.Current.TotalRevenue)
	})

	t.Run("Sem vendedor usa o padrão configurado", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{DefaultSalespeople: []string{"Zeca", "Sarah"}})

		view, err := env.svc.Salesperson(context.Background(), "", "")
		require.NoError(t, err)
		assert.Equal(t, "Sarah", view.Salesperson)
		assert.Equal(t, domain.AllMonths, view.Month)
	})

	t.Run("Sem padrão usa o primeiro em ordem alfabética", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{})

		view, err := env.svc.Salesperson(context.Background(), "", "")
		require.NoError(t, err)
		assert.Equal(t, "Pedro", view.Salesperson)
	})
}

func TestService_Category(t *testing.T) {
	env := newEnv(t, domain.SelectionPolicy{})

	t.Run("Serviço fora da categoria volta para todos", func(t *testing.T) {
		view, err := env.svc.Category(context.Background(), "2024-05", "Backup", "Firewall")
		require.NoError(t, err)

		assert.Equal(t, domain.AllServices, view.Service)
		assert.Equal(t, []string{domain.AllServices, "Backup Local", "Backup em Nuvem"}, view.ServiceOptions)
		assert.Equal(t, 100.0, view.Comparison.Current.TotalRevenue)
		assert.Equal(t, "2024-04", view.Comparison.PreviousMonth)
		assert.InDelta(t, -33.3333, *view.Comparison.Changes.TotalRevenue, 1e-3)
	})

	t.Run("Categoria vazia significa todas", func(t *testing.T) {
		view, err := env.svc.Category(context.Background(), "", "", "Firewall")
		require.NoError(t, err)

		assert.Equal(t, domain.AllCategories, view.Category)
		assert.Equal(t, "Firewall", view.Service)
		assert.Equal(t, 200.0, view.Comparison.Current.TotalRevenue)
	})
}

func TestService_Geography(t *testing.T) {
	t.Run("Estados sem fronteira ficam fora do mapa", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{})
		env.boundaries.EXPECT().Boundaries(gomock.Any()).Return(boundarySet("SP", "MG"), nil)

		view, err := env.svc.Geography(context.Background(), "", "lucro")
		require.NoError(t, err)

		assert.Equal(t, domain.GeoMetricProfit, view.Metric)
		assert.Equal(t, []string{"RJ"}, view.Unmatched)
		require.Len(t, view.States, 2)

		assert.Equal(t, "MG", view.States[0].State)
		assert.Equal(t, 60.0, view.States[0].Value)
		assert.Equal(t, "SP", view.States[1].State)
		assert.Equal(t, 350.0, view.States[1].Revenue)
		assert.Equal(t, 140.0, view.States[1].Cost)
		assert.Equal(t, 210.0, view.States[1].Value)
		assert.NotEmpty(t, view.States[1].Geometry)
	})

	t.Run("Métrica inválida não busca fronteiras", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{})

		_, err := env.svc.Geography(context.Background(), "", "margem")
		assert.ErrorIs(t, err, domain.ErrInvalidMetric)
	})

	t.Run("Falha ao buscar fronteiras", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{})
		env.boundaries.EXPECT().Boundaries(gomock.Any()).Return(domain.BoundarySet{}, errors.New("timeout"))

		_, err := env.svc.Geography(context.Background(), "2024-05", "")
		assert.Error(t, err)
	})
}

func TestService_MonthlyByDimension(t *testing.T) {
	env := newEnv(t, domain.SelectionPolicy{DefaultSalespeople: []string{"Sarah"}})

	t.Run("Vendedor sem seleção usa o padrão", func(t *testing.T) {
		view, err := env.svc.MonthlyByDimension(context.Background(), domain.DimensionSalesperson, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"Sarah"}, view.Values)
		require.Len(t, view.Series, 1)
		require.Len(t, view.Series[0].Points, 2)
		assert.Equal(t, "2024-03", view.Series[0].Points[0].Month)
		assert.Equal(t, "2024-05", view.Series[0].Points[1].Month)
	})

	t.Run("Equipe sem seleção usa todos os valores", func(t *testing.T) {
		view, err := env.svc.MonthlyByDimension(context.Background(), domain.DimensionTeam, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Norte", "Sul"}, view.Values)
	})

	t.Run("Valor sem vendas tem série vazia", func(t *testing.T) {
		view, err := env.svc.MonthlyByDimension(context.Background(), domain.DimensionService, []string{"Firewall", "VPN"})
		require.NoError(t, err)
		require.Len(t, view.Series, 2)
		assert.Len(t, view.Series[0].Points, 1)
		assert.Empty(t, view.Series[1].Points)
	})

	t.Run("Dimensão desconhecida", func(t *testing.T) {
		_, err := env.svc.MonthlyByDimension(context.Background(), domain.Dimension("cliente"), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidDimension)
	})
}

func TestService_Dashboard(t *testing.T) {
	t.Run("Falha de uma aba não derruba as outras", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{})
		env.boundaries.EXPECT().Boundaries(gomock.Any()).Return(domain.BoundarySet{}, errors.New("geojson indisponível"))

		view, err := env.svc.Dashboard(context.Background(), insighting.DashboardRequest{
			Month:       "2024-05",
			Salesperson: "Sarah",
			Category:    "Backup",
		})
		require.NoError(t, err)

		assert.Equal(t, "snap-1", view.SnapshotID)
		assert.Nil(t, view.Geography)
		require.Contains(t, view.Errors, insighting.TabGeography)
		assert.Equal(t, apiErrors.ErrInternalServer, view.Errors[insighting.TabGeography].Code)
		assert.Len(t, view.Errors, 1)

		require.NotNil(t, view.Overview)
		assert.Equal(t, 300.0, view.Overview.Comparison.Current.TotalRevenue)
		require.NotNil(t, view.Salesperson)
		assert.Equal(t, "2024-03", view.Salesperson.Comparison.PreviousMonth)
		require.NotNil(t, view.Category)
		assert.Equal(t, []string{domain.AllServices, "Backup Local", "Backup em Nuvem"}, view.Filters.Services)
		require.NotNil(t, view.Teams)
		assert.Equal(t, "Norte", view.Teams.Ranking[0].Key)
	})

	t.Run("Mês malformado marca as abas dependentes do mês", func(t *testing.T) {
		env := newEnv(t, domain.SelectionPolicy{})

		view, err := env.svc.Dashboard(context.Background(), insighting.DashboardRequest{Month: "2024-13"})
		require.NoError(t, err)

		for _, tab := range []string{insighting.TabOverview, insighting.TabSalesperson, insighting.TabCategory, insighting.TabGeography, insighting.TabTeams} {
			assert.Equal(t, apiErrors.ErrInvalidPeriod, view.Errors[tab].Code, tab)
		}
	})

	t.Run("Falha no snapshot interrompe o dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snapshots := storemocks.NewMockSnapshotProvider(ctrl)
		snapshots.EXPECT().Snapshot(gomock.Any()).Return(nil, domain.ErrDataFormat)

		svc := insighting.NewService(snapshots, mocks.NewMockBoundaryProvider(ctrl), domain.SelectionPolicy{})
		_, err := svc.Dashboard(context.Background(), insighting.DashboardRequest{})
		assert.ErrorIs(t, err, domain.ErrDataFormat)
	})
}
