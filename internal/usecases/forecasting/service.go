// Package forecasting produz as projeções de receita sobre oportunidades
// abertas: otimista, ponderada por probabilidade e conservadora.
package forecasting

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/salesflow/metrics-api/infrastructure/repository"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/salesflow/metrics-api/pkg/timebucket"
)

const (
	// conservativeMinProbability é a probabilidade mínima para uma
	// oportunidade em CLOSING entrar no agregado conservador
	conservativeMinProbability = 75

	// historyMonths é a janela da série histórica de receita realizada
	// exibida junto à previsão
	historyMonths = 6
)

type ForecastService interface {
	GetForecast(ctx context.Context, scope domain.AccessScope) (*domain.ForecastReport, error)
}

type Service struct {
	opportunityRepo repository.OpportunityRepository
	saleRepo        repository.SaleRepository
	now             func() time.Time
}

func NewService(opportunityRepo repository.OpportunityRepository, saleRepo repository.SaleRepository) *Service {
	return &Service{
		opportunityRepo: opportunityRepo,
		saleRepo:        saleRepo,
		now:             time.Now,
	}
}

// monthlyAccumulator acumula os três agregados de um mês de fechamento
// esperado em precisão plena; o arredondamento acontece só na saída
type monthlyAccumulator struct {
	optimistic    float64
	probable      float64
	conservative  float64
	opportunities int
}

func (s *Service) GetForecast(ctx context.Context, scope domain.AccessScope) (*domain.ForecastReport, error) {
	now := s.now()

	// Oportunidades sem etapa terminal cujo fechamento esperado já passou
	// ficam fora da previsão; sinalizá-las é responsabilidade do caller
	opportunities, err := s.opportunityRepo.ListForecastable(ctx, scope, now)
	if err != nil {
		return nil, err
	}

	var optimistic, probable, conservative float64
	byMonth := make(map[string]*monthlyAccumulator)
	details := make([]domain.OpportunityForecast, 0, len(opportunities))

	for _, opportunity := range opportunities {
		weighted := opportunity.Value * float64(opportunity.Probability) / 100
		isConservative := opportunity.Stage == domain.StageClosing &&
			opportunity.Probability >= conservativeMinProbability

		optimistic += opportunity.Value
		probable += weighted
		if isConservative {
			conservative += opportunity.Value
		}

		month := timebucket.Key(opportunity.ExpectedCloseDate)
		acc, ok := byMonth[month]
		if !ok {
			acc = &monthlyAccumulator{}
			byMonth[month] = acc
		}
		acc.optimistic += opportunity.Value
		acc.probable += weighted
		if isConservative {
			acc.conservative += opportunity.Value
		}
		acc.opportunities++

		details = append(details, domain.OpportunityForecast{
			ID:                opportunity.ID,
			Title:             opportunity.Title,
			Customer:          opportunity.CustomerName,
			Seller:            opportunity.SellerName,
			Value:             opportunity.Value,
			Stage:             opportunity.Stage,
			Probability:       opportunity.Probability,
			WeightedValue:     weighted,
			ExpectedCloseDate: opportunity.ExpectedCloseDate,
			DaysToClose:       daysToClose(opportunity.ExpectedCloseDate, now),
		})
	}

	history, err := s.realizedHistory(ctx, scope, now)
	if err != nil {
		return nil, err
	}

	return &domain.ForecastReport{
		Summary: domain.ForecastSummary{
			// Arredondamento para unidade monetária inteira apenas na
			// fronteira do relatório
			Optimistic:         math.Round(optimistic),
			Probable:           math.Round(probable),
			Conservative:       math.Round(conservative),
			TotalOpportunities: len(opportunities),
		},
		ByMonth: monthlyBreakdown(byMonth),
		Details: details,
		History: history,
	}, nil
}

// realizedHistory soma as vendas realizadas dos últimos meses por mês
// calendário. A série histórica nunca se mistura com os agregados de
// previsão.
func (s *Service) realizedHistory(ctx context.Context, scope domain.AccessScope, now time.Time) ([]domain.MonthlyRevenue, error) {
	sales, err := s.saleRepo.ListCompleted(ctx, scope, now.AddDate(0, -historyMonths, 0), now)
	if err != nil {
		return nil, err
	}

	series := timebucket.NewSeries()
	for _, sale := range sales {
		series.Add(sale.Date, sale.Total)
	}

	history := make([]domain.MonthlyRevenue, 0, len(series))
	for _, month := range series.SortedKeys() {
		history = append(history, domain.MonthlyRevenue{
			Month: month,
			Total: series[month].Sum,
		})
	}

	return history, nil
}

func monthlyBreakdown(byMonth map[string]*monthlyAccumulator) []domain.MonthlyForecast {
	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	breakdown := make([]domain.MonthlyForecast, 0, len(byMonth))
	for _, month := range months {
		acc := byMonth[month]
		breakdown = append(breakdown, domain.MonthlyForecast{
			Month:         month,
			Optimistic:    math.Round(acc.optimistic),
			Probable:      math.Round(acc.probable),
			Conservative:  math.Round(acc.conservative),
			Opportunities: acc.opportunities,
		})
	}

	return breakdown
}

// daysToClose arredonda para cima a distância até o fechamento esperado.
// Pode ser negativo apenas se o engine for invocado com um "now" defasado.
func daysToClose(expectedClose, now time.Time) int {
	return int(math.Ceil(expectedClose.Sub(now).Hours() / 24))
}
