package handler

import (
	"net/http"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/insighting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/ranking"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/log"
	"github.com/julienschmidt/httprouter"
)

func dimensionParam(r *http.Request) (domain.Dimension, error) {
	return domain.ParseDimension(httprouter.ParamsFromContext(r.Context()).ByName("dimensao"))
}

// GetMonthlyByDimension retorna o faturamento mensal por valor da dimensão
func GetMonthlyByDimension(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dim, err := dimensionParam(r)
		if err != nil {
			writeServiceError(w, logger, "faturamento-mensal", err)
			return
		}

		view, err := service.MonthlyByDimension(r.Context(), dim, splitList(r.URL.Query().Get(paramValues)))
		if err != nil {
			writeServiceError(w, logger, "faturamento-mensal", err)
			return
		}

		writeJSON(w, logger, "faturamento-mensal", view)
	})
}

// GetDimensionRanking retorna o ranking de faturamento da dimensão no mês
func GetDimensionRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dim, err := dimensionParam(r)
		if err != nil {
			writeServiceError(w, logger, "ranking", err)
			return
		}

		view, err := service.Rank(r.Context(), dim, r.URL.Query().Get(paramMonth))
		if err != nil {
			writeServiceError(w, logger, "ranking", err)
			return
		}

		writeJSON(w, logger, "ranking", view)
	})
}
