package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio do dashboard
var (
	// Erros de carga da tabela
	ErrDataFormat = errors.New("invalid sales table format")

	// Erros de previsão
	ErrInsufficientData = errors.New("insufficient history to train forecast model")
	ErrInvalidHorizon   = errors.New("forecast horizon out of range")

	// Erros de filtro
	ErrInvalidPeriod    = errors.New("invalid month period")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidMetric    = errors.New("invalid geography metric")
)

// DataFormatError descreve uma falha de carga da tabela de vendas
type DataFormatError struct {
	Column string // Coluna envolvida
	Row    int    // Linha da tabela (1 = primeira linha de dados), 0 quando não se aplica
	Value  string // Valor recusado
	Reason string // Motivo da recusa
}

// Error implementa a interface error
func (e *DataFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: column %q row %d value %q: %s", ErrDataFormat.Error(), e.Column, e.Row, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: column %q: %s", ErrDataFormat.Error(), e.Column, e.Reason)
}

// Unwrap retorna o erro base
func (e *DataFormatError) Unwrap() error {
	return ErrDataFormat
}

// InsufficientDataError indica que o histórico não cobre ciclos sazonais suficientes
type InsufficientDataError struct {
	Months   int // Meses disponíveis
	Required int // Meses exigidos
}

// Error implementa a interface error
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %d months available, %d required", ErrInsufficientData.Error(), e.Months, e.Required)
}

// Unwrap retorna o erro base
func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

// PeriodError indica um mês fora do formato YYYY-MM
type PeriodError struct {
	Month string
	Err   error
}

// Error implementa a interface error
func (e *PeriodError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Month)
}

// Unwrap retorna o erro base
func (e *PeriodError) Unwrap() error {
	return e.Err
}
