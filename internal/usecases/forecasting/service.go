package forecasting

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/cache"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/utils"
	"github.com/sirupsen/logrus"
)

const memoCapacity = 8

type ForecastService interface {
	Generate(ctx context.Context, horizon int) (*domain.ForecastResult, error)
}

type Service struct {
	snapshots recordstore.SnapshotProvider
	store     cache.ModelStore
	cfg       Config
	now       func() time.Time

	mu    sync.Mutex
	memo  map[string]*Model
	order []string
}

func NewService(snapshots recordstore.SnapshotProvider, store cache.ModelStore, cfg Config) *Service {
	return &Service{
		snapshots: snapshots,
		store:     store,
		cfg:       cfg.normalized(),
		now:       time.Now,
		memo:      make(map[string]*Model),
	}
}

// Generate treina (ou reaproveita) o modelo da série mensal atual e projeta horizon meses
func (s *Service) Generate(ctx context.Context, horizon int) (*domain.ForecastResult, error) {
	if err := domain.ValidateHorizon(horizon); err != nil {
		return nil, err
	}

	rs, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	series := ResampleMonthly(rs.Records())
	key := SeriesKey(series, s.cfg)

	model, reused, err := s.model(ctx, key, series)
	if err != nil {
		return nil, err
	}

	points, err := model.Forecast(horizon)
	if err != nil {
		return nil, err
	}

	future := make([]domain.ForecastPoint, 0, horizon)
	for _, p := range points {
		if !p.Historical {
			future = append(future, p)
		}
	}

	logrus.WithFields(logrus.Fields{
		"forecast_model_id": model.ID(),
		"forecast_horizon":  horizon,
		"forecast_reused":   reused,
		"snapshot_id":       rs.ID(),
	}).Info("Previsão gerada")

	return &domain.ForecastResult{
		ModelID:   model.ID(),
		SeriesKey: key,
		TrainedAt: model.TrainedAt(),
		Reused:    reused,
		Horizon:   horizon,
		History:   series,
		Points:    points,
		Future:    future,
	}, nil
}

func (s *Service) model(ctx context.Context, key string, series []domain.MonthlyRevenue) (*Model, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.memo[key]; ok {
		return m, true, nil
	}

	if params, found, err := s.store.GetModel(ctx, key); err != nil {
		logrus.WithError(err).Warn("Falha ao consultar modelo no cache compartilhado")
	} else if found {
		if m, err := FromParams(*params); err == nil {
			s.remember(key, m)
			return m, true, nil
		}
	}

	m, err := Fit(series, s.cfg)
	if err != nil {
		return nil, false, err
	}

	id, err := utils.GenerateIDWithLength(12)
	if err != nil {
		return nil, false, fmt.Errorf("generating model id: %w", err)
	}
	m.params.ID = id
	m.params.SeriesKey = key
	m.params.TrainedAt = s.now()

	params := m.Params()
	if err := s.store.SetModel(ctx, &params); err != nil {
		logrus.WithError(err).Warn("Falha ao salvar modelo no cache compartilhado")
	}

	s.remember(key, m)
	return m, false, nil
}

func (s *Service) remember(key string, m *Model) {
	s.memo[key] = m
	s.order = append(s.order, key)
	if len(s.order) > memoCapacity {
		delete(s.memo, s.order[0])
		s.order = s.order[1:]
	}
}

// SeriesKey identifica a série de entrada e a configuração do modelo
func SeriesKey(series []domain.MonthlyRevenue, cfg Config) string {
	cfg = cfg.normalized()
	h := sha1.New()
	fmt.Fprintf(h, "k=%d;it=%d;min=%d;w=%s|", cfg.FourierOrder, cfg.Iterations, cfg.MinMonths,
		strconv.FormatFloat(cfg.IntervalWidth, 'g', -1, 64))
	for _, p := range series {
		fmt.Fprintf(h, "%s=%s;", p.Month, strconv.FormatFloat(p.Revenue, 'f', 6, 64))
	}
	return hex.EncodeToString(h.Sum(nil))
}
