package domain

// FunnelStats é a visão do funil de vendas: etapas abertas do pipeline mais
// a taxa de conversão calculada sobre as oportunidades terminais
type FunnelStats struct {
	ByStage    []FunnelStage `json:"by_stage"`
	Conversion Conversion    `json:"conversion"`
}

// FunnelStage agrega as oportunidades abertas de uma etapa
type FunnelStage struct {
	Stage              Stage   `json:"stage"`
	Count              int     `json:"count"`
	TotalValue         float64 `json:"total_value"`
	AverageProbability float64 `json:"average_probability"`
}

// Conversion resume o desfecho das oportunidades terminais.
// Rate é 0 quando não há oportunidades ganhas nem perdidas.
type Conversion struct {
	Won   int     `json:"won"`
	Lost  int     `json:"lost"`
	Total int     `json:"total"`
	Rate  float64 `json:"rate"`
}
