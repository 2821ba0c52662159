package domain

import "time"

// Stage representa a etapa de uma oportunidade dentro do pipeline de vendas.
// As etapas são ordenadas, mas uma oportunidade pode retroceder; WON e LOST
// são terminais.
type Stage string

const (
	StageProspect    Stage = "PROSPECT"
	StageQualified   Stage = "QUALIFIED"
	StageNegotiation Stage = "NEGOTIATION"
	StageClosing     Stage = "CLOSING"
	StageWon         Stage = "WON"
	StageLost        Stage = "LOST"
)

// OpenStages são as etapas exibidas na visão de pipeline aberto
var OpenStages = []Stage{StageProspect, StageQualified, StageNegotiation, StageClosing}

// ForecastStages são as etapas consideradas no cálculo de previsão
var ForecastStages = []Stage{StageQualified, StageNegotiation, StageClosing}

type Opportunity struct {
	ID                int        `json:"id"`
	SellerID          int        `json:"seller_id"`
	CustomerID        int        `json:"customer_id"`
	Title             string     `json:"title"`
	Value             float64    `json:"value"`
	Stage             Stage      `json:"stage"`
	Probability       int        `json:"probability"`
	ExpectedCloseDate time.Time  `json:"expected_close_date"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`

	// Campos de exibição preenchidos via join com customers/users
	CustomerName string `json:"customer_name,omitempty"`
	SellerName   string `json:"seller_name,omitempty"`
}

// IsTerminal indica se a oportunidade chegou a um estado final
func (s Stage) IsTerminal() bool {
	return s == StageWon || s == StageLost
}
