package forecasting

import (
	"context"
	"testing"
	"time"

	"github.com/salesflow/metrics-api/infrastructure/repository/mocks"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(opportunityRepo *mocks.MockOpportunityRepository, saleRepo *mocks.MockSaleRepository) *Service {
	service := NewService(opportunityRepo, saleRepo)
	service.now = func() time.Time { return testNow }
	return service
}

func TestGetForecastAgregados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOpportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newTestService(mockOpportunityRepo, mockSaleRepo)

	scope := domain.AccessScope{}
	julyClose := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	mockOpportunityRepo.EXPECT().
		ListForecastable(gomock.Any(), scope, testNow).
		Return([]*domain.Opportunity{
			{
				ID:                1,
				Title:             "Renovação anual",
				Stage:             domain.StageClosing,
				Value:             1000,
				Probability:       80,
				ExpectedCloseDate: julyClose,
				CustomerName:      "Acme",
				SellerName:        "Ana Souza",
			},
			{
				ID:                2,
				Title:             "Expansão de licenças",
				Stage:             domain.StageQualified,
				Value:             500,
				Probability:       30,
				ExpectedCloseDate: julyClose,
			},
		}, nil)

	mockSaleRepo.EXPECT().
		ListCompleted(gomock.Any(), scope, testNow.AddDate(0, -historyMonths, 0), testNow).
		Return([]*domain.Sale{}, nil)

	report, err := service.GetForecast(context.Background(), scope)

	assert.NoError(t, err)

	// Otimista soma tudo; ponderado aplica a probabilidade; conservador
	// aceita apenas CLOSING com probabilidade >= 75
	assert.Equal(t, float64(1500), report.Summary.Optimistic)
	assert.Equal(t, float64(950), report.Summary.Probable)
	assert.Equal(t, float64(1000), report.Summary.Conservative)
	assert.Equal(t, 2, report.Summary.TotalOpportunities)

	assert.Len(t, report.ByMonth, 1)
	assert.Equal(t, "2025-07", report.ByMonth[0].Month)
	assert.Equal(t, 2, report.ByMonth[0].Opportunities)

	assert.Len(t, report.Details, 2)
	assert.Equal(t, float64(800), report.Details[0].WeightedValue)
	assert.Equal(t, "Acme", report.Details[0].Customer)
	assert.Equal(t, 39, report.Details[0].DaysToClose)
}

func TestGetForecastMonotonicidade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOpportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newTestService(mockOpportunityRepo, mockSaleRepo)

	scope := domain.AccessScope{}

	// Conjunto variado de etapas e probabilidades
	opportunities := []*domain.Opportunity{
		{ID: 1, Stage: domain.StageClosing, Value: 2000, Probability: 90, ExpectedCloseDate: testNow.AddDate(0, 1, 0)},
		{ID: 2, Stage: domain.StageClosing, Value: 800, Probability: 50, ExpectedCloseDate: testNow.AddDate(0, 1, 0)},
		{ID: 3, Stage: domain.StageNegotiation, Value: 1500, Probability: 70, ExpectedCloseDate: testNow.AddDate(0, 2, 0)},
		{ID: 4, Stage: domain.StageQualified, Value: 300, Probability: 10, ExpectedCloseDate: testNow.AddDate(0, 3, 0)},
	}

	mockOpportunityRepo.EXPECT().
		ListForecastable(gomock.Any(), scope, testNow).
		Return(opportunities, nil)

	mockSaleRepo.EXPECT().
		ListCompleted(gomock.Any(), scope, gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{}, nil)

	report, err := service.GetForecast(context.Background(), scope)

	assert.NoError(t, err)
	assert.LessOrEqual(t, report.Summary.Conservative, report.Summary.Probable)
	assert.LessOrEqual(t, report.Summary.Probable, report.Summary.Optimistic)

	for _, month := range report.ByMonth {
		assert.LessOrEqual(t, month.Conservative, month.Probable)
		assert.LessOrEqual(t, month.Probable, month.Optimistic)
	}
}

func TestGetForecastHistoricoRealizado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOpportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newTestService(mockOpportunityRepo, mockSaleRepo)

	scope := domain.AccessScope{}

	mockOpportunityRepo.EXPECT().
		ListForecastable(gomock.Any(), scope, testNow).
		Return([]*domain.Opportunity{}, nil)

	mockSaleRepo.EXPECT().
		ListCompleted(gomock.Any(), scope, gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{
			{Date: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), Total: 700},
			{Date: time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), Total: 300},
			{Date: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), Total: 450},
		}, nil)

	report, err := service.GetForecast(context.Background(), scope)

	assert.NoError(t, err)

	// Série em ordem cronológica, agrupada por mês calendário
	assert.Equal(t, []domain.MonthlyRevenue{
		{Month: "2025-02", Total: 450},
		{Month: "2025-04", Total: 1000},
	}, report.History)
}
