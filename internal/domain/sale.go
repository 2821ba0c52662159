package domain

import "time"

// Status possíveis de uma venda. Apenas vendas COMPLETED contam como receita
// realizada.
const (
	SaleStatusPending   = "PENDING"
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
)

type Sale struct {
	ID         int       `json:"id"`
	SellerID   int       `json:"seller_id"`
	CustomerID int       `json:"customer_id"`
	Date       time.Time `json:"date"`
	Total      float64   `json:"total"`
	Commission float64   `json:"commission"`
	Status     string    `json:"status"`
}

// SalesTotals agrega receita realizada de um período
type SalesTotals struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
