package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sale(date, team string, revenue int64) domain.SaleRecord {
	d, _ := time.Parse("2006-01-02", date)
	return domain.NewSaleRecord(domain.SaleInput{
		SaleDate:    d,
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(revenue),
		Cost:        decimal.NewFromInt(revenue / 2),
		Salesperson: "Ana",
		Team:        team,
		CustomerID:  "C1",
		State:       "SP",
		Service:     "Firewall",
	})
}

func fixture() *domain.RecordSet {
	return domain.NewRecordSet("snap", "test", "fp", []domain.SaleRecord{
		sale("2024-01-10", "Norte", 300),
		sale("2024-01-11", "Sul", 100),
		sale("2024-01-12", "Leste", 200),
		sale("2024-02-10", "Norte", 100),
		sale("2024-02-11", "Sul", 500),
		sale("2024-02-12", "Oeste", 50),
	})
}

func TestRankRecords(t *testing.T) {
	t.Run("Compara posições com o mês anterior", func(t *testing.T) {
		view, err := RankRecords(fixture(), domain.DimensionTeam, "2024-02")
		require.NoError(t, err)

		assert.Equal(t, "2024-01", view.PreviousMonth)
		require.Len(t, view.Ranking, 3)

		assert.Equal(t, domain.RankingItem{Key: "Sul", Revenue: 500, Profit: 250, Position: 1, PreviousPosition: 3, PositionChange: 2}, view.Ranking[0])
		assert.Equal(t, domain.RankingItem{Key: "Norte", Revenue: 100, Profit: 50, Position: 2, PreviousPosition: 1, PositionChange: -1}, view.Ranking[1])
		assert.Equal(t, domain.RankingItem{Key: "Oeste", Revenue: 50, Profit: 25, Position: 3}, view.Ranking[2])
	})

	t.Run("Todos os meses sem comparação", func(t *testing.T) {
		view, err := RankRecords(fixture(), domain.DimensionTeam, "")
		require.NoError(t, err)

		assert.Equal(t, domain.AllMonths, view.Month)
		assert.Empty(t, view.PreviousMonth)
		assert.Equal(t, "Sul", view.Ranking[0].Key)
		assert.Equal(t, "Norte", view.Ranking[1].Key)
		assert.Zero(t, view.Ranking[0].PreviousPosition)
	})

	t.Run("Empate desfeito pela chave", func(t *testing.T) {
		rs := domain.NewRecordSet("snap", "test", "fp", []domain.SaleRecord{
			sale("2024-01-10", "Sul", 100),
			sale("2024-01-11", "Norte", 100),
		})
		view, err := RankRecords(rs, domain.DimensionTeam, "2024-01")
		require.NoError(t, err)
		assert.Equal(t, "Norte", view.Ranking[0].Key)
		assert.Equal(t, "Sul", view.Ranking[1].Key)
	})

	t.Run("Mês sem vendas", func(t *testing.T) {
		view, err := RankRecords(fixture(), domain.DimensionTeam, "2025-01")
		require.NoError(t, err)
		assert.Empty(t, view.Ranking)
	})

	t.Run("Mês malformado", func(t *testing.T) {
		_, err := RankRecords(fixture(), domain.DimensionTeam, "02/2024")
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})

	t.Run("Dimensão desconhecida", func(t *testing.T) {
		_, err := RankRecords(fixture(), domain.Dimension("cliente"), "2024-02")
		assert.ErrorIs(t, err, domain.ErrInvalidDimension)
	})
}

func TestDimensionRankingService_Rank(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := mocks.NewMockSnapshotProvider(ctrl)
	snapshots.EXPECT().Snapshot(gomock.Any()).Return(fixture(), nil)

	view, err := NewDimensionRankingService(snapshots).Rank(context.Background(), domain.DimensionService, "2024-01")
	require.NoError(t, err)
	require.Len(t, view.Ranking, 1)
	assert.Equal(t, "Firewall", view.Ranking[0].Key)
	assert.Equal(t, 600.0, view.Ranking[0].Revenue)
}
