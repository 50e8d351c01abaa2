package forecasting

import (
	"math"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	minFourierOrder   = 1
	maxFourierOrder   = 5
	defaultIterations = 10
)

// Config define o modelo sazonal
type Config struct {
	FourierOrder  int
	MinMonths     int
	IntervalWidth float64
	Iterations    int
}

func (c Config) normalized() Config {
	if c.FourierOrder < minFourierOrder {
		c.FourierOrder = minFourierOrder
	}
	if c.FourierOrder > maxFourierOrder {
		c.FourierOrder = maxFourierOrder
	}
	if c.Iterations <= 0 {
		c.Iterations = defaultIterations
	}
	if c.MinMonths <= 0 {
		c.MinMonths = 24
	}
	if c.IntervalWidth <= 0 || c.IntervalWidth >= 1 {
		c.IntervalWidth = 0.8
	}
	return c
}

// Model é um modelo treinado e imutável: tendência linear g(t) = a + b·t
// com sazonalidade anual multiplicativa, ŷ = g(t)·(1 + s(t)).
type Model struct {
	params domain.ForecastModelParams
	origin int // índice absoluto do primeiro mês
}

// Fit treina o modelo por mínimos quadrados alternados, sem aleatoriedade
func Fit(series []domain.MonthlyRevenue, cfg Config) (*Model, error) {
	cfg = cfg.normalized()

	n := len(series)
	if n < cfg.MinMonths {
		return nil, &domain.InsufficientDataError{Months: n, Required: cfg.MinMonths}
	}

	origin := monthIndex(series[0].Date)
	k := cfg.FourierOrder

	u := make([]float64, n)
	y := make([]float64, n)
	features := make([][]float64, n)
	for i, p := range series {
		idx := monthIndex(p.Date)
		u[i] = float64(idx - origin)
		y[i] = p.Revenue
		features[i] = fourier(idx, k)
	}

	// Tendência inicial por MQO simples
	intercept, slope := 0.0, 0.0
	if a, b, ok := solveTrend(u, y, nil); ok {
		intercept, slope = a, b
	}
	seasonal := make([]float64, 2*k)

	for iter := 0; iter < cfg.Iterations; iter++ {
		g := make([]float64, n)
		for i := range g {
			g[i] = intercept + slope*u[i]
		}

		// Passo sazonal: y - g = g·s
		design := mat.NewDense(n, 2*k, nil)
		target := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < 2*k; j++ {
				design.Set(i, j, g[i]*features[i][j])
			}
			target.SetVec(i, y[i]-g[i])
		}
		if beta, ok := leastSquares(design, target); ok {
			seasonal = beta
		}

		// Passo de tendência: y = (a + b·t)·(1 + s)
		factor := make([]float64, n)
		for i := range factor {
			factor[i] = 1 + dot(seasonal, features[i])
		}
		if a, b, ok := solveTrend(u, y, factor); ok {
			intercept, slope = a, b
		}
	}

	m := &Model{
		origin: origin,
		params: domain.ForecastModelParams{
			FourierOrder:  k,
			IntervalWidth: cfg.IntervalWidth,
			Intercept:     intercept,
			Slope:         slope,
			Seasonal:      seasonal,
			History:       append([]domain.MonthlyRevenue(nil), series...),
		},
	}

	var sse float64
	for i := range y {
		r := y[i] - m.predict(origin+int(u[i]))
		sse += r * r
	}
	dof := n - (2 + 2*k)
	if dof <= 0 {
		dof = n
	}
	m.params.Sigma = math.Sqrt(sse / float64(dof))
	m.params.Z = distuv.UnitNormal.Quantile(0.5 + cfg.IntervalWidth/2)

	return m, nil
}

// FromParams reconstrói um modelo a partir de parâmetros já treinados
func FromParams(params domain.ForecastModelParams) (*Model, error) {
	if len(params.History) == 0 || len(params.Seasonal) != 2*params.FourierOrder {
		return nil, domain.ErrInsufficientData
	}
	return &Model{params: params, origin: monthIndex(params.History[0].Date)}, nil
}

// Params retorna uma cópia dos parâmetros treinados
func (m *Model) Params() domain.ForecastModelParams {
	p := m.params
	p.Seasonal = append([]float64(nil), m.params.Seasonal...)
	p.History = append([]domain.MonthlyRevenue(nil), m.params.History...)
	return p
}

func (m *Model) ID() string           { return m.params.ID }
func (m *Model) SeriesKey() string    { return m.params.SeriesKey }
func (m *Model) TrainedAt() time.Time { return m.params.TrainedAt }

// Forecast estende a série por horizon meses. Todo mês histórico e futuro recebe estimativa e banda.
func (m *Model) Forecast(horizon int) ([]domain.ForecastPoint, error) {
	if err := domain.ValidateHorizon(horizon); err != nil {
		return nil, err
	}

	history := m.params.History
	n := len(history)
	points := make([]domain.ForecastPoint, 0, n+horizon)

	for i := 0; i < n+horizon; i++ {
		idx := m.origin + i
		h := 0
		if i >= n {
			h = i - n + 1
		}

		yhat := m.predict(idx)
		width := m.params.Z * m.params.Sigma * math.Sqrt(1+float64(h)/float64(n))
		start := monthStart(idx)

		points = append(points, domain.ForecastPoint{
			Month:            domain.MonthKey(start),
			Date:             domain.MonthEnd(start),
			PredictedRevenue: yhat,
			LowerBound:       yhat - width,
			UpperBound:       yhat + width,
			Historical:       h == 0,
		})
	}

	return points, nil
}

func (m *Model) predict(idx int) float64 {
	t := float64(idx - m.origin)
	trend := m.params.Intercept + m.params.Slope*t
	return trend * (1 + dot(m.params.Seasonal, fourier(idx, m.params.FourierOrder)))
}

// fourier retorna [sin(2πk·m/12), cos(2πk·m/12)] para k = 1..order, com m o mês do ano
func fourier(idx, order int) []float64 {
	month := float64(idx % 12)
	out := make([]float64, 0, 2*order)
	for k := 1; k <= order; k++ {
		angle := 2 * math.Pi * float64(k) * month / 12
		out = append(out, math.Sin(angle), math.Cos(angle))
	}
	return out
}

// solveTrend ajusta y = (a + b·t)·f; f nil equivale a 1
func solveTrend(u, y, factor []float64) (float64, float64, bool) {
	n := len(u)
	design := mat.NewDense(n, 2, nil)
	target := mat.NewVecDense(n, y)
	for i := 0; i < n; i++ {
		f := 1.0
		if factor != nil {
			f = factor[i]
		}
		design.Set(i, 0, f)
		design.Set(i, 1, u[i]*f)
	}

	beta, ok := leastSquares(design, target)
	if !ok {
		return 0, 0, false
	}
	return beta[0], beta[1], true
}

func leastSquares(a *mat.Dense, b *mat.VecDense) ([]float64, bool) {
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, false
	}

	out := make([]float64, x.Len())
	for i := range out {
		v := x.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
