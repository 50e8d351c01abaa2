package ranking

import (
	"context"
	"sort"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
)

type RankingService interface {
	Rank(ctx context.Context, dim domain.Dimension, month string) (*domain.RankingView, error)
}

type DimensionRankingService struct {
	snapshots recordstore.SnapshotProvider
}

func NewDimensionRankingService(snapshots recordstore.SnapshotProvider) RankingService {
	return &DimensionRankingService{
		snapshots: snapshots,
	}
}

func (s *DimensionRankingService) Rank(ctx context.Context, dim domain.Dimension, month string) (*domain.RankingView, error) {
	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return RankRecords(rs, dim, month)
}

// RankRecords ordena os valores da dimensão pelo faturamento do mês e compara
// a posição com a do mês calendário anterior. "Todos" considera o histórico inteiro, sem comparação.
func RankRecords(rs *domain.RecordSet, dim domain.Dimension, month string) (*domain.RankingView, error) {
	if _, err := domain.ParseDimension(string(dim)); err != nil {
		return nil, err
	}

	view := &domain.RankingView{
		Dimension:  dim,
		Month:      month,
		Ranking:    []domain.RankingItem{},
		LastUpdate: rs.LoadedAt(),
	}
	if domain.IsAll(month) {
		view.Month = domain.AllMonths
	}

	current := rankGroups(domain.GroupBy(domain.ApplyFilter(rs, domain.FilterContext{Month: month}), dim.Value))

	previousPositions := map[string]int{}
	if !domain.IsAll(month) {
		previousMonth, err := domain.PreviousCalendarMonth(month)
		if err != nil {
			return nil, err
		}
		view.PreviousMonth = previousMonth

		previous := rankGroups(domain.GroupBy(domain.ApplyFilter(rs, domain.FilterContext{Month: previousMonth}), dim.Value))
		for i, g := range previous {
			previousPositions[g.Key] = i + 1
		}
	}

	for i, g := range current {
		item := domain.RankingItem{
			Key:      g.Key,
			Revenue:  g.Revenue,
			Profit:   g.Profit,
			Position: i + 1,
		}
		if prev, ok := previousPositions[g.Key]; ok {
			item.PreviousPosition = prev
			item.PositionChange = prev - item.Position
		}
		view.Ranking = append(view.Ranking, item)
	}

	return view, nil
}

// rankGroups ordena por faturamento decrescente; empate desfeito pela chave
func rankGroups(groups []domain.GroupTotal) []domain.GroupTotal {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Revenue != groups[j].Revenue {
			return groups[i].Revenue > groups[j].Revenue
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
