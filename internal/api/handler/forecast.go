package handler

import (
	"net/http"
	"strconv"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/forecasting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/apiErrors"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/log"
)

const defaultHorizon = 3

// PostForecast treina (ou reaproveita) o modelo e projeta o faturamento
func PostForecast(service forecasting.ForecastService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		horizon := defaultHorizon
		if raw := r.URL.Query().Get(paramHorizon); raw != "" {
			h, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Horizonte deve ser um número inteiro de meses", nil)
				return
			}
			horizon = h
		}

		result, err := service.Generate(r.Context(), horizon)
		if err != nil {
			writeServiceError(w, logger, "previsao", err)
			return
		}

		logger.WithFields(log.Fields{
			"forecast_model_id": result.ModelID,
			"forecast_horizon":  result.Horizon,
			"forecast_reused":   result.Reused,
		}).Info("previsao: previsão gerada")

		writeJSON(w, logger, "previsao", result)
	})
}
