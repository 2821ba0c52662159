package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/salesflow/metrics-api/infrastructure/repository/mocks"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/salesflow/metrics-api/internal/usecases/funneling"
	"github.com/salesflow/metrics-api/internal/usecases/ranking"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	saleRepo        *mocks.MockSaleRepository
	customerRepo    *mocks.MockCustomerRepository
	lineItemRepo    *mocks.MockLineItemRepository
	productRepo     *mocks.MockProductRepository
	activityRepo    *mocks.MockActivityRepository
	opportunityRepo *mocks.MockOpportunityRepository
	userRepo        *mocks.MockUserRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		saleRepo:        mocks.NewMockSaleRepository(ctrl),
		customerRepo:    mocks.NewMockCustomerRepository(ctrl),
		lineItemRepo:    mocks.NewMockLineItemRepository(ctrl),
		productRepo:     mocks.NewMockProductRepository(ctrl),
		activityRepo:    mocks.NewMockActivityRepository(ctrl),
		opportunityRepo: mocks.NewMockOpportunityRepository(ctrl),
		userRepo:        mocks.NewMockUserRepository(ctrl),
	}

	service := NewService(
		m.saleRepo,
		m.customerRepo,
		m.lineItemRepo,
		m.productRepo,
		m.activityRepo,
		funneling.NewService(m.opportunityRepo),
		ranking.NewSellerRankingService(m.saleRepo, m.userRepo),
	)
	service.now = func() time.Time { return testNow }

	return service, m
}

func TestGetPeriodMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actor := &domain.Claims{UserID: 1, UserRoleID: domain.RoleManager}
	scope := domain.AccessScope{}

	start, end := domain.PeriodMonth.Range(testNow)
	previousStart, previousEnd := domain.PeriodMonth.PreviousRange(testNow)

	// Período corrente: três vendas de 100, 200 e 300
	m.saleRepo.EXPECT().
		SumCompleted(gomock.Any(), scope, start, end).
		Return(&domain.SalesTotals{Total: 600, Count: 3}, nil)

	// Período anterior: 200 de receita, crescimento de 200%
	m.saleRepo.EXPECT().
		SumCompleted(gomock.Any(), scope, previousStart, previousEnd).
		Return(&domain.SalesTotals{Total: 200, Count: 2}, nil)

	m.customerRepo.EXPECT().
		CountActive(gomock.Any()).
		Return(42, nil)

	m.opportunityRepo.EXPECT().
		ListByStages(gomock.Any(), scope, gomock.Nil()).
		Return([]*domain.Opportunity{
			{ID: 1, Stage: domain.StageProspect, Value: 1000},
			{ID: 2, Stage: domain.StageClosing, Value: 5000},
		}, nil)

	m.lineItemRepo.EXPECT().
		TopProductSales(gomock.Any(), scope, start, end, uint64(topProductsLimit)).
		Return([]*domain.ProductSales{
			{ProductID: 10, Quantity: 4, Subtotal: 400},
		}, nil)

	m.productRepo.EXPECT().
		GetByIDs(gomock.Any(), []int{10}).
		Return([]*domain.Product{
			{ID: 10, Name: "Plano Pro", Category: "Assinatura"},
		}, nil)

	m.saleRepo.EXPECT().
		ListCompleted(gomock.Any(), scope, start, end).
		Return([]*domain.Sale{
			{SellerID: 2, Total: 600, Commission: 60},
		}, nil)

	m.userRepo.EXPECT().
		GetUsersByIDs(gomock.Any(), []int{2}).
		Return([]*domain.User{
			{ID: 2, Name: "Bruno", Lastname: "Lima"},
		}, nil)

	m.activityRepo.EXPECT().
		CountPending(gomock.Any(), 1, testNow).
		Return(5, nil)

	metrics, err := service.GetPeriodMetrics(context.Background(), actor, domain.PeriodMonth)

	assert.NoError(t, err)
	assert.Equal(t, domain.PeriodMonth, metrics.Period)
	assert.Equal(t, float64(600), metrics.Sales.Total)
	assert.Equal(t, 3, metrics.Sales.Count)
	assert.Equal(t, 200.00, metrics.Sales.Growth)
	assert.Equal(t, float64(200), metrics.Sales.PreviousTotal)
	assert.Equal(t, 42, metrics.Customers.Active)
	assert.Equal(t, 2, metrics.Opportunities.Total)
	assert.Equal(t, 5, metrics.PendingActivities)

	assert.Len(t, metrics.TopProducts, 1)
	assert.Equal(t, "Plano Pro", metrics.TopProducts[0].Name)

	assert.Len(t, metrics.SellerRanking, 1)
	assert.Equal(t, "Bruno Lima", metrics.SellerRanking[0].Name)
}

func TestGetPeriodMetricsVendedorRestritoAoProprioEscopo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actor := &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}
	sellerID := 7
	scope := domain.AccessScope{SellerID: &sellerID}

	// Todas as sub-agregações recebem o mesmo escopo restrito
	m.saleRepo.EXPECT().
		SumCompleted(gomock.Any(), scope, gomock.Any(), gomock.Any()).
		Return(&domain.SalesTotals{Total: 100, Count: 1}, nil).
		Times(2)

	m.customerRepo.EXPECT().
		CountActive(gomock.Any()).
		Return(10, nil)

	m.opportunityRepo.EXPECT().
		ListByStages(gomock.Any(), scope, gomock.Nil()).
		Return([]*domain.Opportunity{}, nil)

	m.lineItemRepo.EXPECT().
		TopProductSales(gomock.Any(), scope, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.ProductSales{}, nil)

	m.productRepo.EXPECT().
		GetByIDs(gomock.Any(), gomock.Any()).
		Return([]*domain.Product{}, nil)

	m.activityRepo.EXPECT().
		CountPending(gomock.Any(), 7, testNow).
		Return(0, nil)

	metrics, err := service.GetPeriodMetrics(context.Background(), actor, domain.PeriodMonth)

	assert.NoError(t, err)

	// Vendedor recebe o dashboard sem a seção de ranking
	assert.Empty(t, metrics.SellerRanking)
	assert.Equal(t, float64(100), metrics.Sales.Total)
}

func TestGetPeriodMetricsProdutoRemovidoDoCatalogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actor := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	scope := domain.AccessScope{}

	m.saleRepo.EXPECT().
		SumCompleted(gomock.Any(), scope, gomock.Any(), gomock.Any()).
		Return(&domain.SalesTotals{}, nil).
		Times(2)

	m.customerRepo.EXPECT().
		CountActive(gomock.Any()).
		Return(0, nil)

	m.opportunityRepo.EXPECT().
		ListByStages(gomock.Any(), scope, gomock.Nil()).
		Return([]*domain.Opportunity{}, nil)

	// Dois produtos vendidos, mas só o 10 ainda existe no catálogo
	m.lineItemRepo.EXPECT().
		TopProductSales(gomock.Any(), scope, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.ProductSales{
			{ProductID: 10, Quantity: 2, Subtotal: 500},
			{ProductID: 11, Quantity: 8, Subtotal: 300},
		}, nil)

	m.productRepo.EXPECT().
		GetByIDs(gomock.Any(), []int{10, 11}).
		Return([]*domain.Product{
			{ID: 10, Name: "Plano Pro", Category: "Assinatura"},
		}, nil)

	m.saleRepo.EXPECT().
		ListCompleted(gomock.Any(), scope, gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{}, nil)

	m.userRepo.EXPECT().
		GetUsersByIDs(gomock.Any(), gomock.Any()).
		Return([]*domain.User{}, nil)

	m.activityRepo.EXPECT().
		CountPending(gomock.Any(), 1, testNow).
		Return(0, nil)

	metrics, err := service.GetPeriodMetrics(context.Background(), actor, domain.PeriodMonth)

	assert.NoError(t, err)

	// O produto órfão é omitido sem derrubar a agregação
	assert.Len(t, metrics.TopProducts, 1)
	assert.Equal(t, 10, metrics.TopProducts[0].ProductID)
}

func TestGetPeriodMetricsFalhaAtomicamente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actor := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	scope := domain.AccessScope{}

	m.saleRepo.EXPECT().
		SumCompleted(gomock.Any(), scope, gomock.Any(), gomock.Any()).
		Return(&domain.SalesTotals{}, nil).
		Times(2)

	// Uma única sub-agregação falhando derruba a requisição inteira
	m.customerRepo.EXPECT().
		CountActive(gomock.Any()).
		Return(0, errors.New("connection reset"))

	m.opportunityRepo.EXPECT().
		ListByStages(gomock.Any(), scope, gomock.Nil()).
		Return([]*domain.Opportunity{}, nil)

	m.lineItemRepo.EXPECT().
		TopProductSales(gomock.Any(), scope, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.ProductSales{}, nil)

	m.productRepo.EXPECT().
		GetByIDs(gomock.Any(), gomock.Any()).
		Return([]*domain.Product{}, nil)

	m.saleRepo.EXPECT().
		ListCompleted(gomock.Any(), scope, gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{}, nil)

	m.userRepo.EXPECT().
		GetUsersByIDs(gomock.Any(), gomock.Any()).
		Return([]*domain.User{}, nil)

	m.activityRepo.EXPECT().
		CountPending(gomock.Any(), 1, testNow).
		Return(0, nil)

	metrics, err := service.GetPeriodMetrics(context.Background(), actor, domain.PeriodMonth)

	assert.Error(t, err)
	assert.Nil(t, metrics)
}

func TestGetPeriodMetricsSemAtor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	metrics, err := service.GetPeriodMetrics(context.Background(), nil, domain.PeriodMonth)

	assert.Error(t, err)
	assert.Nil(t, metrics)
}

func TestGetSalesSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	actor := &domain.Claims{UserID: 1, UserRoleID: domain.RoleManager}

	m.saleRepo.EXPECT().
		ListCompleted(gomock.Any(), domain.AccessScope{}, testNow.AddDate(0, -6, 0), testNow).
		Return([]*domain.Sale{
			{Date: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), Total: 100.40},
			{Date: time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC), Total: 200.40},
			{Date: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), Total: 999.60},
		}, nil)

	series, err := service.GetSalesSeries(context.Background(), actor, 6)

	assert.NoError(t, err)
	assert.Equal(t, []domain.SalesSeriesPoint{
		{Month: "2025-04", Total: 301, Count: 2, Average: 150},
		{Month: "2025-05", Total: 1000, Count: 1, Average: 1000},
	}, series)
}

func TestGetCustomerSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.customerRepo.EXPECT().
		CountAll(gomock.Any()).
		Return(100, nil)

	m.customerRepo.EXPECT().
		CountActive(gomock.Any()).
		Return(80, nil)

	m.customerRepo.EXPECT().
		CountByType(gomock.Any()).
		Return([]*domain.CustomerGroup{
			{Key: "COMPANY", Count: 60},
			{Key: "INDIVIDUAL", Count: 40},
		}, nil)

	m.customerRepo.EXPECT().
		TopIndustries(gomock.Any(), uint64(5)).
		Return([]*domain.CustomerGroup{
			{Key: "Varejo", Count: 30},
		}, nil)

	summary, err := service.GetCustomerSummary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 100, summary.Total)
	assert.Equal(t, 80, summary.Active)
	assert.Equal(t, 20, summary.Inactive)
	assert.Len(t, summary.ByType, 2)
	assert.Equal(t, "Varejo", summary.TopIndustries[0].Key)
}
