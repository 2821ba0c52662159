// Package reporting orquestra as agregações independentes em visões
// compostas: snapshot do dashboard, série temporal de vendas e resumo de
// clientes. O engine é stateless e de leitura pura; cada requisição calcula
// tudo de novo a partir dos repositórios.
package reporting

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/salesflow/metrics-api/infrastructure/repository"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/salesflow/metrics-api/internal/usecases/funneling"
	"github.com/salesflow/metrics-api/internal/usecases/ranking"
	"github.com/salesflow/metrics-api/pkg/timebucket"
	"github.com/salesflow/metrics-api/pkg/utils"
)

const topProductsLimit = 5

type MetricsService interface {
	// GetPeriodMetrics monta o snapshot do dashboard para a janela pedida
	GetPeriodMetrics(ctx context.Context, actor *domain.Claims, period domain.Period) (*domain.PeriodMetrics, error)
	// GetSalesSeries devolve a série mensal de vendas realizadas dos
	// últimos months meses
	GetSalesSeries(ctx context.Context, actor *domain.Claims, months int) ([]domain.SalesSeriesPoint, error)
	// GetCustomerSummary devolve o resumo estatístico da base de clientes
	GetCustomerSummary(ctx context.Context) (*domain.CustomerSummary, error)
}

type Service struct {
	saleRepo       repository.SaleRepository
	customerRepo   repository.CustomerRepository
	lineItemRepo   repository.LineItemRepository
	productRepo    repository.ProductRepository
	activityRepo   repository.ActivityRepository
	funnelService  funneling.FunnelService
	rankingService ranking.RankingService
	now            func() time.Time
}

func NewService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	lineItemRepo repository.LineItemRepository,
	productRepo repository.ProductRepository,
	activityRepo repository.ActivityRepository,
	funnelService funneling.FunnelService,
	rankingService ranking.RankingService,
) *Service {
	return &Service{
		saleRepo:       saleRepo,
		customerRepo:   customerRepo,
		lineItemRepo:   lineItemRepo,
		productRepo:    productRepo,
		activityRepo:   activityRepo,
		funnelService:  funnelService,
		rankingService: rankingService,
		now:            time.Now,
	}
}

func (s *Service) GetPeriodMetrics(ctx context.Context, actor *domain.Claims, period domain.Period) (*domain.PeriodMetrics, error) {
	if actor == nil {
		return nil, errors.New("ator da requisição é obrigatório")
	}

	// O escopo é resolvido uma única vez e propagado sem alterações para
	// todas as sub-agregações
	scope := domain.NewAccessScope(actor, nil)

	now := s.now()
	start, end := period.Range(now)
	previousStart, previousEnd := period.PreviousRange(now)

	var (
		currentTotals     *domain.SalesTotals
		previousTotals    *domain.SalesTotals
		activeCustomers   int
		opportunities     *domain.OpportunitiesOverview
		topProducts       []domain.PopularProduct
		sellerRanking     []domain.SellerRankingEntry
		pendingActivities int

		currentErr    error
		previousErr   error
		customersErr  error
		funnelErr     error
		productsErr   error
		rankingErr    error
		activitiesErr error
	)

	// As sub-agregações são independentes entre si e disparadas em
	// paralelo contra o repositório; a requisição falha atomicamente se
	// qualquer uma delas falhar
	wg := sync.WaitGroup{}
	wg.Add(7)

	go func() {
		defer wg.Done()
		currentTotals, currentErr = s.saleRepo.SumCompleted(ctx, scope, start, end)
	}()

	go func() {
		defer wg.Done()
		previousTotals, previousErr = s.saleRepo.SumCompleted(ctx, scope, previousStart, previousEnd)
	}()

	go func() {
		defer wg.Done()
		activeCustomers, customersErr = s.customerRepo.CountActive(ctx)
	}()

	go func() {
		defer wg.Done()
		opportunities, funnelErr = s.funnelService.GetStageBreakdown(ctx, scope)
	}()

	go func() {
		defer wg.Done()
		topProducts, productsErr = s.topProducts(ctx, scope, start, end)
	}()

	go func() {
		defer wg.Done()
		sellerRanking, rankingErr = s.rankingService.GetSellerRanking(ctx, actor, start, end)
	}()

	go func() {
		defer wg.Done()
		pendingActivities, activitiesErr = s.activityRepo.CountPending(ctx, actor.UserID, now)
	}()

	wg.Wait()

	for _, err := range []error{currentErr, previousErr, customersErr, funnelErr, productsErr, rankingErr, activitiesErr} {
		if err != nil {
			return nil, err
		}
	}

	return &domain.PeriodMetrics{
		Period: period,
		Sales: domain.SalesOverview{
			Total:         currentTotals.Total,
			Count:         currentTotals.Count,
			Growth:        utils.GrowthPercentage(currentTotals.Total, previousTotals.Total),
			PreviousTotal: previousTotals.Total,
		},
		Customers: domain.CustomersOverview{
			Active: activeCustomers,
		},
		Opportunities:     *opportunities,
		TopProducts:       topProducts,
		SellerRanking:     sellerRanking,
		PendingActivities: pendingActivities,
	}, nil
}

// topProducts enriquece as somas brutas por produto com os metadados do
// catálogo. Um produto referenciado por itens de venda mas removido do
// catálogo é omitido da lista enriquecida sem derrubar a agregação; é o
// único caso de dado parcial tolerado.
func (s *Service) topProducts(ctx context.Context, scope domain.AccessScope, from, to time.Time) ([]domain.PopularProduct, error) {
	productSales, err := s.lineItemRepo.TopProductSales(ctx, scope, from, to, topProductsLimit)
	if err != nil {
		return nil, err
	}

	productIDs := make([]int, 0, len(productSales))
	for _, sales := range productSales {
		productIDs = append(productIDs, sales.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[int]*domain.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	popular := make([]domain.PopularProduct, 0, len(productSales))
	for _, sales := range productSales {
		product, ok := productsByID[sales.ProductID]
		if !ok {
			continue
		}
		popular = append(popular, domain.PopularProduct{
			ProductID: sales.ProductID,
			Name:      product.Name,
			Category:  product.Category,
			Quantity:  sales.Quantity,
			Subtotal:  sales.Subtotal,
		})
	}

	return popular, nil
}

func (s *Service) GetSalesSeries(ctx context.Context, actor *domain.Claims, months int) ([]domain.SalesSeriesPoint, error) {
	scope := domain.NewAccessScope(actor, nil)
	now := s.now()

	sales, err := s.saleRepo.ListCompleted(ctx, scope, now.AddDate(0, -months, 0), now)
	if err != nil {
		return nil, err
	}

	series := timebucket.NewSeries()
	for _, sale := range sales {
		series.Add(sale.Date, sale.Total)
	}

	points := make([]domain.SalesSeriesPoint, 0, len(series))
	for _, month := range series.SortedKeys() {
		acc := series[month]
		points = append(points, domain.SalesSeriesPoint{
			Month:   month,
			Total:   math.Round(acc.Sum),
			Count:   acc.Count,
			Average: math.Round(acc.Average()),
		})
	}

	return points, nil
}

func (s *Service) GetCustomerSummary(ctx context.Context) (*domain.CustomerSummary, error) {
	var (
		total, active          int
		byType, topIndustries  []*domain.CustomerGroup
		totalErr, activeErr    error
		typeErr, industriesErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		total, totalErr = s.customerRepo.CountAll(ctx)
	}()

	go func() {
		defer wg.Done()
		active, activeErr = s.customerRepo.CountActive(ctx)
	}()

	go func() {
		defer wg.Done()
		byType, typeErr = s.customerRepo.CountByType(ctx)
	}()

	go func() {
		defer wg.Done()
		topIndustries, industriesErr = s.customerRepo.TopIndustries(ctx, 5)
	}()

	wg.Wait()

	for _, err := range []error{totalErr, activeErr, typeErr, industriesErr} {
		if err != nil {
			return nil, err
		}
	}

	return &domain.CustomerSummary{
		Total:         total,
		Active:        active,
		Inactive:      total - active,
		ByType:        dereferenceGroups(byType),
		TopIndustries: dereferenceGroups(topIndustries),
	}, nil
}

func dereferenceGroups(groups []*domain.CustomerGroup) []domain.CustomerGroup {
	result := make([]domain.CustomerGroup, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}
	return result
}
