package handler

import (
	"net/http"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/api/handler/router"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/forecasting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/insighting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/ranking"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
)

func Healthcheck(snapshots recordstore.SnapshotProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(snapshots),
		},
	}
}

func Dashboard(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/filtros",
			Method:  http.MethodGet,
			Handler: GetFilters(service),
		},
		{
			Path:    "/v1/dashboard/visao-geral",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/dashboard/vendedores",
			Method:  http.MethodGet,
			Handler: GetSalesperson(service),
		},
		{
			Path:    "/v1/dashboard/categorias",
			Method:  http.MethodGet,
			Handler: GetCategory(service),
		},
		{
			Path:    "/v1/dashboard/geografia",
			Method:  http.MethodGet,
			Handler: GetGeography(service),
		},
		{
			Path:    "/v1/dashboard/dimensoes/:dimensao/faturamento-mensal",
			Method:  http.MethodGet,
			Handler: GetMonthlyByDimension(service),
		},
	}
}

func Ranking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/dimensoes/:dimensao/ranking",
			Method:  http.MethodGet,
			Handler: GetDimensionRanking(service),
		},
	}
}

func Forecast(service forecasting.ForecastService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/previsao",
			Method:  http.MethodPost,
			Handler: PostForecast(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
