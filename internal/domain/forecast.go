package domain

import "time"

// ForecastReport é a projeção de receita sobre oportunidades abertas.
// Os três agregados respeitam conservative <= probable <= optimistic para
// qualquer conjunto de oportunidades.
type ForecastReport struct {
	Summary ForecastSummary       `json:"summary"`
	ByMonth []MonthlyForecast     `json:"by_month"`
	Details []OpportunityForecast `json:"details"`
	History []MonthlyRevenue      `json:"history"`
}

type ForecastSummary struct {
	Optimistic         float64 `json:"optimistic"`
	Probable           float64 `json:"probable"`
	Conservative       float64 `json:"conservative"`
	TotalOpportunities int     `json:"total_opportunities"`
}

type MonthlyForecast struct {
	Month         string  `json:"month"`
	Optimistic    float64 `json:"optimistic"`
	Probable      float64 `json:"probable"`
	Conservative  float64 `json:"conservative"`
	Opportunities int     `json:"opportunities"`
}

type OpportunityForecast struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Customer          string    `json:"customer"`
	Seller            string    `json:"seller"`
	Value             float64   `json:"value"`
	Stage             Stage     `json:"stage"`
	Probability       int       `json:"probability"`
	WeightedValue     float64   `json:"weighted_value"`
	ExpectedCloseDate time.Time `json:"expected_close_date"`
	DaysToClose       int       `json:"days_to_close"`
}

// MonthlyRevenue é um ponto da série histórica de receita realizada
type MonthlyRevenue struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}
