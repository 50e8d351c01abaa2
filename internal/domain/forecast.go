package domain

import "time"

// Limites do horizonte de previsão em meses
const (
	MinForecastHorizon = 1
	MaxForecastHorizon = 12
)

// MonthlyRevenue é o faturamento total de um mês
type MonthlyRevenue struct {
	Month   string    `json:"month"`
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// ForecastPoint é uma estimativa mensal com banda de incerteza
type ForecastPoint struct {
	Month            string    `json:"month"`
	Date             time.Time `json:"date"` // Último dia do mês
	PredictedRevenue float64   `json:"predicted_revenue"`
	LowerBound       float64   `json:"lower_bound"`
	UpperBound       float64   `json:"upper_bound"`
	Historical       bool      `json:"historical"`
}

// ForecastResult é a resposta de uma previsão
type ForecastResult struct {
	ModelID   string           `json:"model_id"`
	SeriesKey string           `json:"series_key"`
	TrainedAt time.Time        `json:"trained_at"`
	Reused    bool             `json:"reused"`
	Horizon   int              `json:"horizon"`
	History   []MonthlyRevenue `json:"history"`
	Points    []ForecastPoint  `json:"points"`
	Future    []ForecastPoint  `json:"future"`
}

// ValidateHorizon confere se o horizonte está entre 1 e 12 meses
func ValidateHorizon(horizon int) error {
	if horizon < MinForecastHorizon || horizon > MaxForecastHorizon {
		return ErrInvalidHorizon
	}
	return nil
}

// ForecastModelParams são os parâmetros treinados de um modelo, serializáveis para o cache compartilhado
type ForecastModelParams struct {
	ID            string           `json:"id"`
	SeriesKey     string           `json:"series_key"`
	TrainedAt     time.Time        `json:"trained_at"`
	FourierOrder  int              `json:"fourier_order"`
	IntervalWidth float64          `json:"interval_width"`
	Intercept     float64          `json:"intercept"`
	Slope         float64          `json:"slope"`
	Seasonal      []float64        `json:"seasonal"` // sin_1, cos_1, ..., sin_K, cos_K
	Sigma         float64          `json:"sigma"`
	Z             float64          `json:"z"`
	History       []MonthlyRevenue `json:"history"`
}
