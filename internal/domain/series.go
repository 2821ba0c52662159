package domain

// SalesSeriesPoint é um ponto da série temporal de vendas realizadas,
// agrupado por mês calendário
type SalesSeriesPoint struct {
	Month   string  `json:"month"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}
