package domain

// Status possíveis de um cliente
const (
	CustomerStatusActive   = "ACTIVE"
	CustomerStatusInactive = "INACTIVE"
)

// CustomerSummary é o resumo estatístico da base de clientes
type CustomerSummary struct {
	Total         int             `json:"total"`
	Active        int             `json:"active"`
	Inactive      int             `json:"inactive"`
	ByType        []CustomerGroup `json:"by_type"`
	TopIndustries []CustomerGroup `json:"top_industries"`
}

// CustomerGroup é uma contagem de clientes agrupados por um atributo
type CustomerGroup struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
