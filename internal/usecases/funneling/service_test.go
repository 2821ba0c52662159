package funneling

import (
	"context"
	"testing"

	"github.com/salesflow/metrics-api/infrastructure/repository/mocks"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetFunnelStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOpportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	service := NewService(mockOpportunityRepo)

	scope := domain.AccessScope{}

	mockOpportunityRepo.EXPECT().
		ListByStages(gomock.Any(), scope, domain.OpenStages).
		Return([]*domain.Opportunity{
			{ID: 1, Stage: domain.StageQualified, Value: 1000, Probability: 40},
			{ID: 2, Stage: domain.StageQualified, Value: 3000, Probability: 60},
			{ID: 3, Stage: domain.StageClosing, Value: 500, Probability: 90},
		}, nil)

	mockOpportunityRepo.EXPECT().
		CountByStage(gomock.Any(), scope, domain.StageWon).
		Return(3, nil)

	mockOpportunityRepo.EXPECT().
		CountByStage(gomock.Any(), scope, domain.StageLost).
		Return(1, nil)

	stats, err := service.GetFunnelStats(context.Background(), scope)

	assert.NoError(t, err)
	assert.Len(t, stats.ByStage, 2)

	// Etapas na ordem canônica do pipeline, apenas as que têm registros
	qualified := stats.ByStage[0]
	assert.Equal(t, domain.StageQualified, qualified.Stage)
	assert.Equal(t, 2, qualified.Count)
	assert.Equal(t, float64(4000), qualified.TotalValue)
	assert.Equal(t, float64(50), qualified.AverageProbability)

	closing := stats.ByStage[1]
	assert.Equal(t, domain.StageClosing, closing.Stage)
	assert.Equal(t, 1, closing.Count)

	assert.Equal(t, 3, stats.Conversion.Won)
	assert.Equal(t, 1, stats.Conversion.Lost)
	assert.Equal(t, 4, stats.Conversion.Total)
	assert.Equal(t, 75.00, stats.Conversion.Rate)
}

func TestGetFunnelStatsSemOportunidadesTerminais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOpportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	service := NewService(mockOpportunityRepo)

	scope := domain.AccessScope{}

	mockOpportunityRepo.EXPECT().
		ListByStages(gomock.Any(), scope, domain.OpenStages).
		Return([]*domain.Opportunity{}, nil)

	mockOpportunityRepo.EXPECT().
		CountByStage(gomock.Any(), scope, domain.StageWon).
		Return(0, nil)

	mockOpportunityRepo.EXPECT().
		CountByStage(gomock.Any(), scope, domain.StageLost).
		Return(0, nil)

	stats, err := service.GetFunnelStats(context.Background(), scope)

	assert.NoError(t, err)
	assert.Empty(t, stats.ByStage)

	// Denominador zero resolve para taxa 0, não para erro
	assert.Equal(t, float64(0), stats.Conversion.Rate)
	assert.Equal(t, 0, stats.Conversion.Total)
}

func TestGetStageBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOpportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	service := NewService(mockOpportunityRepo)

	scope := domain.AccessScope{}

	mockOpportunityRepo.EXPECT().
		ListByStages(gomock.Any(), scope, gomock.Nil()).
		Return([]*domain.Opportunity{
			{ID: 1, Stage: domain.StageProspect, Value: 100},
			{ID: 2, Stage: domain.StageWon, Value: 900},
			{ID: 3, Stage: domain.StageProspect, Value: 300},
		}, nil)

	overview, err := service.GetStageBreakdown(context.Background(), scope)

	assert.NoError(t, err)
	assert.Equal(t, 3, overview.Total)
	assert.Len(t, overview.ByStage, 2)
	assert.Equal(t, domain.StageProspect, overview.ByStage[0].Stage)
	assert.Equal(t, float64(400), overview.ByStage[0].TotalValue)
	assert.Equal(t, domain.StageWon, overview.ByStage[1].Stage)
}
