package apiErrors

import (
	"errors"
	"net/http"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidPeriod       = "VAL_004" // Mês fora do formato YYYY-MM
	ErrInvalidHorizon      = "VAL_005" // Horizonte de previsão fora de 1..12
	ErrInvalidDimension    = "VAL_006" // Dimensão desconhecida
	ErrInvalidMetric       = "VAL_007" // Métrica geográfica desconhecida
	ErrNotFound            = "VAL_008" // Rota não encontrada
	ErrMethodNotAllowed    = "VAL_009" // Método HTTP não permitido

	// Erros de dados (3000-3999)
	ErrDataFormat = "DATA_001" // Tabela de vendas malformada

	// Erros de previsão (4000-4999)
	ErrInsufficientData = "FCST_001" // Histórico insuficiente para treinar o modelo

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrJobAlreadyRunning = "SRV_005" // Job de atualização já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidPeriod:       http.StatusBadRequest,
	ErrInvalidHorizon:      http.StatusBadRequest,
	ErrInvalidDimension:    http.StatusBadRequest,
	ErrInvalidMetric:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrDataFormat:          http.StatusInternalServerError,
	ErrInsufficientData:    http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
	ErrJobAlreadyRunning:   http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// CodeFor classifica um erro de domínio no código de API correspondente
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidPeriod):
		return ErrInvalidPeriod
	case errors.Is(err, domain.ErrInvalidHorizon):
		return ErrInvalidHorizon
	case errors.Is(err, domain.ErrInvalidDimension):
		return ErrInvalidDimension
	case errors.Is(err, domain.ErrInvalidMetric):
		return ErrInvalidMetric
	case errors.Is(err, domain.ErrDataFormat):
		return ErrDataFormat
	case errors.Is(err, domain.ErrInsufficientData):
		return ErrInsufficientData
	}
	return ErrInternalServer
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

// WriteDomainError escreve o erro classificado por CodeFor
func WriteDomainError(w http.ResponseWriter, err error, details any) {
	code := CodeFor(err)
	WriteError(w, code, err.Error(), details)
}
