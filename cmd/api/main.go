package main

import (
	"context"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/cache"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/datasource"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/integrator/geo"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/api"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/scheduler"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/forecasting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/insighting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/ranking"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource, err := datasource.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir a fonte da tabela de vendas")
	}
	defer closeSource()

	store := recordstore.NewStore(source)

	// A primeira carga valida a tabela antes de aceitar requisições
	if rs, err := store.Snapshot(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a tabela de vendas")
	} else {
		logrus.WithFields(logrus.Fields{
			"snapshot_id": rs.ID(),
			"source":      rs.Source(),
			"rows":        rs.Len(),
		}).Info("Tabela de vendas carregada")
	}

	modelStore, err := cache.NewModelStore(cfg.Cache)
	if err != nil {
		logrus.WithError(err).Warn("Cache de modelos indisponível, usando apenas memória local")
		modelStore = cache.NewNoopModelStore()
	}

	forecastService := forecasting.NewService(store, modelStore, forecasting.Config{
		FourierOrder:  cfg.Forecast.FourierOrder,
		MinMonths:     cfg.Forecast.MinMonths,
		IntervalWidth: cfg.Forecast.IntervalWidth,
		Iterations:    cfg.Forecast.Iterations,
	})

	insightService := insighting.NewService(store, geo.NewClient(cfg.Geo), domain.SelectionPolicy{
		DefaultSalespeople: cfg.Filters.DefaultSalespeople,
		DefaultServices:    cfg.Filters.DefaultServices,
	})

	rankingService := ranking.NewDimensionRankingService(store)

	snapshotRefreshService := scheduler.NewSnapshotRefreshService(store, cfg)
	if err := snapshotRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do snapshot")
	} else {
		logrus.Info("Agendador de atualização do snapshot iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		store,
		insightService,
		rankingService,
		forecastService,
		snapshotRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
