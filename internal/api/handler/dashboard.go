package handler

import (
	"net/http"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/presenter"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/insighting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/log"
)

// Parâmetros de consulta do dashboard
const (
	paramMonth       = "mes"
	paramSalesperson = "vendedor"
	paramCategory    = "categoria"
	paramService     = "servico"
	paramMetric      = "metrica"
	paramValues      = "valores"
	paramHorizon     = "horizonte"
)

type overviewResponse struct {
	*domain.OverviewView
	Cards []presenter.KpiCard `json:"cards"`
}

type salespersonResponse struct {
	*domain.SalespersonView
	Cards []presenter.KpiCard `json:"cards"`
}

type categoryResponse struct {
	*domain.CategoryView
	Cards []presenter.KpiCard `json:"cards"`
}

// GetDashboard retorna todas as abas; falhas de uma aba aparecem em "errors"
func GetDashboard(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		q := r.URL.Query()

		req := insighting.DashboardRequest{
			Month:       q.Get(paramMonth),
			Salesperson: q.Get(paramSalesperson),
			Category:    q.Get(paramCategory),
			Service:     q.Get(paramService),
			Metric:      q.Get(paramMetric),
		}

		view, err := service.Dashboard(r.Context(), req)
		if err != nil {
			writeServiceError(w, logger, "dashboard", err)
			return
		}

		logger.WithFields(log.Fields{
			"snapshot_id": view.SnapshotID,
			"tab_errors":  len(view.Errors),
		}).Info("dashboard: abas montadas")

		writeJSON(w, logger, "dashboard", view)
	})
}

// GetFilters retorna as opções dos seletores
func GetFilters(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		opts, err := service.Filters(r.Context(), r.URL.Query().Get(paramCategory))
		if err != nil {
			writeServiceError(w, logger, "filtros", err)
			return
		}

		writeJSON(w, logger, "filtros", opts)
	})
}

// GetOverview retorna os KPIs gerais e a série de faturamento
func GetOverview(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := service.Overview(r.Context(), r.URL.Query().Get(paramMonth))
		if err != nil {
			writeServiceError(w, logger, "visao-geral", err)
			return
		}

		writeJSON(w, logger, "visao-geral", overviewResponse{
			OverviewView: view,
			Cards:        presenter.OverviewCards(view.Comparison),
		})
	})
}

// GetSalesperson retorna os KPIs de um vendedor
func GetSalesperson(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		q := r.URL.Query()

		view, err := service.Salesperson(r.Context(), q.Get(paramSalesperson), q.Get(paramMonth))
		if err != nil {
			writeServiceError(w, logger, "vendedores", err)
			return
		}

		writeJSON(w, logger, "vendedores", salespersonResponse{
			SalespersonView: view,
			Cards:           presenter.SalespersonCards(view.Comparison),
		})
	})
}

// GetCategory retorna os KPIs de categoria e serviço
func GetCategory(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		q := r.URL.Query()

		view, err := service.Category(r.Context(), q.Get(paramMonth), q.Get(paramCategory), q.Get(paramService))
		if err != nil {
			writeServiceError(w, logger, "categorias", err)
			return
		}

		writeJSON(w, logger, "categorias", categoryResponse{
			CategoryView: view,
			Cards:        presenter.CategoryCards(view.Comparison),
		})
	})
}

// GetGeography retorna os totais por estado com as fronteiras do mapa
func GetGeography(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		q := r.URL.Query()

		view, err := service.Geography(r.Context(), q.Get(paramMonth), q.Get(paramMetric))
		if err != nil {
			writeServiceError(w, logger, "geografia", err)
			return
		}

		if len(view.Unmatched) > 0 {
			logger.WithField("unmatched", view.Unmatched).Info("geografia: estados sem fronteira no mapa")
		}

		writeJSON(w, logger, "geografia", view)
	})
}
