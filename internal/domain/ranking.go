package domain

import "time"

type RankingView struct {
	Dimension     Dimension     `json:"dimension"`
	Month         string        `json:"month"`
	PreviousMonth string        `json:"previous_month,omitempty"`
	Ranking       []RankingItem `json:"ranking"`
	LastUpdate    time.Time     `json:"last_update"`
}

type RankingItem struct {
	Key              string  `json:"key"`
	Revenue          float64 `json:"revenue"`
	Profit           float64 `json:"profit"`
	Position         int     `json:"position"`
	PreviousPosition int     `json:"previous_position"` // 0 = sem posição no mês anterior
	PositionChange   int     `json:"position_change"`   // Valor positivo = subiu, negativo = desceu, 0 = manteve
}
