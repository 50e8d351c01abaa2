package apiErrors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "Mês inválido", err: &domain.PeriodError{Month: "x", Err: domain.ErrInvalidPeriod}, expected: ErrInvalidPeriod},
		{name: "Horizonte inválido", err: domain.ErrInvalidHorizon, expected: ErrInvalidHorizon},
		{name: "Histórico insuficiente", err: &domain.InsufficientDataError{Months: 3, Required: 24}, expected: ErrInsufficientData},
		{name: "Tabela malformada embrulhada", err: fmt.Errorf("carga: %w", &domain.DataFormatError{Column: "custo"}), expected: ErrDataFormat},
		{name: "Erro desconhecido", err: fmt.Errorf("boom"), expected: ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeFor(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInsufficientData, "histórico insuficiente", map[string]int{"months": 3})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInsufficientData, body.Code)
	assert.Equal(t, "histórico insuficiente", body.Message)
}

func TestStatusFor_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}
