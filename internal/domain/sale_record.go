package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthKeyLayout é o formato das chaves de mês (ex: 2024-03)
const MonthKeyLayout = "2006-01"

// SaleRecord representa uma linha da tabela de vendas já normalizada.
// Os campos derivados são calculados uma única vez em NewSaleRecord.
type SaleRecord struct {
	SaleDate        time.Time       `json:"sale_date"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Cost            decimal.Decimal `json:"cost"`
	Salesperson     string          `json:"salesperson"`
	Team            string          `json:"team"`
	CustomerID      string          `json:"customer_id"`
	State           string          `json:"state"`
	Service         string          `json:"service"`
	ServiceCategory string          `json:"service_category"`

	Revenue  decimal.Decimal `json:"revenue"`
	Profit   decimal.Decimal `json:"profit"`
	MonthKey string          `json:"month_key"`
	Day      time.Time       `json:"day"`
}

// SaleInput contém os campos de origem de uma venda
type SaleInput struct {
	SaleDate        time.Time
	Quantity        int64
	UnitPrice       decimal.Decimal
	Cost            decimal.Decimal
	Salesperson     string
	Team            string
	CustomerID      string
	State           string
	Service         string
	ServiceCategory string
}

// NewSaleRecord cria um SaleRecord calculando faturamento, lucro, mês e dia
func NewSaleRecord(in SaleInput) SaleRecord {
	revenue := decimal.NewFromInt(in.Quantity).Mul(in.UnitPrice)

	return SaleRecord{
		SaleDate:        in.SaleDate,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		Cost:            in.Cost,
		Salesperson:     in.Salesperson,
		Team:            in.Team,
		CustomerID:      in.CustomerID,
		State:           in.State,
		Service:         in.Service,
		ServiceCategory: in.ServiceCategory,
		Revenue:         revenue,
		Profit:          revenue.Sub(in.Cost),
		MonthKey:        MonthKey(in.SaleDate),
		Day:             TruncateToDay(in.SaleDate),
	}
}

// MonthKey retorna a chave de mês no formato YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// TruncateToDay zera o horário mantendo a data
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseMonthKey converte uma chave YYYY-MM para o primeiro dia do mês
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, &PeriodError{Month: key, Err: ErrInvalidPeriod}
	}
	return t, nil
}

// MonthEnd retorna o último dia do mês da data informada
func MonthEnd(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1)
}
