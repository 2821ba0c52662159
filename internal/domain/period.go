package domain

import "time"

// Period é a granularidade de janela aceita pelo dashboard
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod converte o parâmetro de query em um Period válido.
// Valores ausentes ou desconhecidos caem no padrão mensal.
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodQuarter:
		return PeriodQuarter
	case PeriodYear:
		return PeriodYear
	default:
		return PeriodMonth
	}
}

// Range devolve o início da janela corrente ancorada em now
func (p Period) Range(now time.Time) (start, end time.Time) {
	switch p {
	case PeriodQuarter:
		return now.AddDate(0, -3, 0), now
	case PeriodYear:
		return now.AddDate(-1, 0, 0), now
	default:
		return now.AddDate(0, -1, 0), now
	}
}

// PreviousRange devolve a janela de mesmo comprimento imediatamente anterior,
// usada como linha de base do cálculo de crescimento
func (p Period) PreviousRange(now time.Time) (start, end time.Time) {
	currentStart, _ := p.Range(now)
	switch p {
	case PeriodQuarter:
		return currentStart.AddDate(0, -3, 0), currentStart
	case PeriodYear:
		return currentStart.AddDate(-1, 0, 0), currentStart
	default:
		return currentStart.AddDate(0, -1, 0), currentStart
	}
}
