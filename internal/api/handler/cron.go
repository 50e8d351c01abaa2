package handler

import (
	"net/http"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/scheduler"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/apiErrors"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshot = "snapshot"
	CronJobTypeAll      = "all"
)

// CronJob é uma tarefa agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotRefreshService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshot, CronJobTypeAll:
			if services.SnapshotRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do snapshot não disponível", nil)
				return
			}
			if err := services.SnapshotRefreshService.TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrRefreshRunning) {
					apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Atualização do snapshot já em andamento", nil)
					return
				}
				writeServiceError(w, logger, "cron", err)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot, all", nil)
			return
		}

		logger.WithField("job_type", cronType).Info("cron: job iniciada manualmente")

		writeJSONStatus(w, logger, "cron", http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs do tipo informado
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType != CronJobTypeSnapshot && cronType != CronJobTypeAll {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot, all", nil)
			return
		}

		status := map[string]any{}
		if services.SnapshotRefreshService != nil {
			status[CronJobTypeSnapshot] = services.SnapshotRefreshService.GetStatus()
		}

		writeJSON(w, logger, "cron", status)
	})
}
