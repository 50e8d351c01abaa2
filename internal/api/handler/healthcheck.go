package handler

import (
	"net/http"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/log"
)

// HealthcheckHandler responde com o horário atual e o snapshot carregado.
// Falha na carga da tabela deixa o serviço indisponível.
func HealthcheckHandler(snapshots recordstore.SnapshotProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rs, err := snapshots.Snapshot(r.Context())
		if err != nil {
			logger.WithError(err).Warn("healthcheck: snapshot indisponível")
			writeJSONStatus(w, logger, "healthcheck", http.StatusServiceUnavailable, map[string]any{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}

		writeJSON(w, logger, "healthcheck", map[string]any{
			"status":      "ok",
			"time":        time.Now().Format(time.RFC3339),
			"snapshot_id": rs.ID(),
			"source":      rs.Source(),
			"rows":        rs.Len(),
			"loaded_at":   rs.LoadedAt(),
		})
	})
}
