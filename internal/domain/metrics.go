package domain

// PeriodMetrics é o snapshot do dashboard para uma janela de tempo.
// É recalculado a cada requisição e nunca persistido.
type PeriodMetrics struct {
	Period            Period                `json:"period"`
	Sales             SalesOverview         `json:"sales"`
	Customers         CustomersOverview     `json:"customers"`
	Opportunities     OpportunitiesOverview `json:"opportunities"`
	TopProducts       []PopularProduct      `json:"top_products"`
	SellerRanking     []SellerRankingEntry  `json:"seller_ranking"`
	PendingActivities int                   `json:"pending_activities"`
}

type SalesOverview struct {
	Total         float64 `json:"total"`
	Count         int     `json:"count"`
	Growth        float64 `json:"growth"`
	PreviousTotal float64 `json:"previous_total"`
}

type CustomersOverview struct {
	Active int `json:"active"`
}

type OpportunitiesOverview struct {
	ByStage []StageBreakdown `json:"by_stage"`
	Total   int              `json:"total"`
}

// StageBreakdown é a agregação de oportunidades de uma etapa do pipeline
type StageBreakdown struct {
	Stage      Stage   `json:"stage"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
}

// SellerRankingEntry é uma posição do ranking de vendedores no período
type SellerRankingEntry struct {
	SellerID   int     `json:"seller_id"`
	Name       string  `json:"name"`
	TotalSales float64 `json:"total_sales"`
	SalesCount int     `json:"sales_count"`
	Commission float64 `json:"commission"`
}
