// Package funneling agrega as oportunidades do pipeline por etapa e calcula a
// taxa de conversão das oportunidades terminais.
package funneling

import (
	"context"

	"github.com/salesflow/metrics-api/infrastructure/repository"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/salesflow/metrics-api/pkg/utils"
)

// pipelineOrder é a ordem canônica de exibição das etapas
var pipelineOrder = []domain.Stage{
	domain.StageProspect,
	domain.StageQualified,
	domain.StageNegotiation,
	domain.StageClosing,
	domain.StageWon,
	domain.StageLost,
}

type FunnelService interface {
	// GetFunnelStats devolve a visão do funil: etapas abertas com contagem,
	// valor e probabilidade média, mais o bloco de conversão
	GetFunnelStats(ctx context.Context, scope domain.AccessScope) (*domain.FunnelStats, error)
	// GetStageBreakdown devolve a distribuição de todas as oportunidades do
	// escopo por etapa, para o snapshot do dashboard
	GetStageBreakdown(ctx context.Context, scope domain.AccessScope) (*domain.OpportunitiesOverview, error)
}

type Service struct {
	opportunityRepo repository.OpportunityRepository
}

func NewService(opportunityRepo repository.OpportunityRepository) FunnelService {
	return &Service{
		opportunityRepo: opportunityRepo,
	}
}

func (s *Service) GetFunnelStats(ctx context.Context, scope domain.AccessScope) (*domain.FunnelStats, error) {
	opportunities, err := s.opportunityRepo.ListByStages(ctx, scope, domain.OpenStages)
	if err != nil {
		return nil, err
	}

	type stageAccumulator struct {
		count          int
		totalValue     float64
		probabilitySum int
	}

	byStage := make(map[domain.Stage]*stageAccumulator)
	for _, opportunity := range opportunities {
		acc, ok := byStage[opportunity.Stage]
		if !ok {
			acc = &stageAccumulator{}
			byStage[opportunity.Stage] = acc
		}
		acc.count++
		acc.totalValue += opportunity.Value
		acc.probabilitySum += opportunity.Probability
	}

	// Apenas etapas com registros são emitidas, na ordem do pipeline
	stages := make([]domain.FunnelStage, 0, len(byStage))
	for _, stage := range pipelineOrder {
		acc, ok := byStage[stage]
		if !ok {
			continue
		}
		stages = append(stages, domain.FunnelStage{
			Stage:              stage,
			Count:              acc.count,
			TotalValue:         acc.totalValue,
			AverageProbability: utils.RoundWithTwoDecimalPlace(float64(acc.probabilitySum) / float64(acc.count)),
		})
	}

	conversion, err := s.conversion(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &domain.FunnelStats{
		ByStage:    stages,
		Conversion: *conversion,
	}, nil
}

func (s *Service) GetStageBreakdown(ctx context.Context, scope domain.AccessScope) (*domain.OpportunitiesOverview, error) {
	opportunities, err := s.opportunityRepo.ListByStages(ctx, scope, nil)
	if err != nil {
		return nil, err
	}

	type stageAccumulator struct {
		count      int
		totalValue float64
	}

	byStage := make(map[domain.Stage]*stageAccumulator)
	for _, opportunity := range opportunities {
		acc, ok := byStage[opportunity.Stage]
		if !ok {
			acc = &stageAccumulator{}
			byStage[opportunity.Stage] = acc
		}
		acc.count++
		acc.totalValue += opportunity.Value
	}

	breakdown := make([]domain.StageBreakdown, 0, len(byStage))
	total := 0
	for _, stage := range pipelineOrder {
		acc, ok := byStage[stage]
		if !ok {
			continue
		}
		breakdown = append(breakdown, domain.StageBreakdown{
			Stage:      stage,
			Count:      acc.count,
			TotalValue: acc.totalValue,
		})
		total += acc.count
	}

	return &domain.OpportunitiesOverview{
		ByStage: breakdown,
		Total:   total,
	}, nil
}

// conversion calcula a taxa de conversão sobre as oportunidades terminais.
// Denominador zero resolve para taxa 0, nunca para divisão por zero.
func (s *Service) conversion(ctx context.Context, scope domain.AccessScope) (*domain.Conversion, error) {
	won, err := s.opportunityRepo.CountByStage(ctx, scope, domain.StageWon)
	if err != nil {
		return nil, err
	}

	lost, err := s.opportunityRepo.CountByStage(ctx, scope, domain.StageLost)
	if err != nil {
		return nil, err
	}

	total := won + lost
	rate := 0.0
	if total > 0 {
		rate = utils.RoundWithTwoDecimalPlace(float64(won) / float64(total) * 100)
	}

	return &domain.Conversion{
		Won:   won,
		Lost:  lost,
		Total: total,
		Rate:  rate,
	}, nil
}
