package handler

import (
	"net/http"
	"strings"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/apiErrors"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, op string, payload any) {
	writeJSONStatus(w, logger, op, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, logger log.Logger, op string, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error(op + ": erro ao codificar resposta")
	}
}

// writeServiceError classifica o erro do serviço e escreve a resposta padronizada
func writeServiceError(w http.ResponseWriter, logger log.Logger, op string, err error) {
	code := apiErrors.CodeFor(err)

	var details any
	var formatErr *domain.DataFormatError
	var insufficientErr *domain.InsufficientDataError
	switch {
	case errors.As(err, &formatErr):
		details = map[string]any{
			"column": formatErr.Column,
			"row":    formatErr.Row,
			"value":  formatErr.Value,
		}
	case errors.As(err, &insufficientErr):
		details = map[string]any{
			"months":   insufficientErr.Months,
			"required": insufficientErr.Required,
		}
	}

	entry := logger.WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		entry.Error(op + ": erro ao processar requisição")
	} else {
		entry.Warn(op + ": requisição rejeitada")
	}

	apiErrors.WriteError(w, code, err.Error(), details)
}

// splitList separa uma lista de valores por vírgula, ignorando itens vazios
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	out := make([]string, 0)
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
