// Package ranking classifica os vendedores por receita realizada no período.
package ranking

import (
	"context"
	"sort"
	"time"

	"github.com/salesflow/metrics-api/infrastructure/repository"
	"github.com/salesflow/metrics-api/internal/domain"
)

type RankingService interface {
	// GetSellerRanking agrupa as vendas realizadas do período por vendedor.
	// A restrição de visibilidade é aplicada aqui dentro: um ator com papel
	// de vendedor nunca recebe o ranking dos demais.
	GetSellerRanking(ctx context.Context, actor *domain.Claims, from, to time.Time) ([]domain.SellerRankingEntry, error)
}

type SellerRankingService struct {
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
}

func NewSellerRankingService(saleRepo repository.SaleRepository, userRepo repository.UserRepository) RankingService {
	return &SellerRankingService{
		saleRepo: saleRepo,
		userRepo: userRepo,
	}
}

func (s *SellerRankingService) GetSellerRanking(ctx context.Context, actor *domain.Claims, from, to time.Time) ([]domain.SellerRankingEntry, error) {
	// Vendedores recebem o dashboard sem a seção de ranking, não um erro
	if actor == nil || actor.UserRoleID == domain.RoleSeller {
		return []domain.SellerRankingEntry{}, nil
	}

	sales, err := s.saleRepo.ListCompleted(ctx, domain.AccessScope{}, from, to)
	if err != nil {
		return nil, err
	}

	bySeller := make(map[int]*domain.SellerRankingEntry)
	for _, sale := range sales {
		entry, ok := bySeller[sale.SellerID]
		if !ok {
			entry = &domain.SellerRankingEntry{SellerID: sale.SellerID}
			bySeller[sale.SellerID] = entry
		}
		entry.TotalSales += sale.Total
		entry.Commission += sale.Commission
		entry.SalesCount++
	}

	sellerIDs := make([]int, 0, len(bySeller))
	for sellerID := range bySeller {
		sellerIDs = append(sellerIDs, sellerID)
	}

	sellers, err := s.userRepo.GetUsersByIDs(ctx, sellerIDs)
	if err != nil {
		return nil, err
	}

	namesByID := make(map[int]string, len(sellers))
	for _, seller := range sellers {
		namesByID[seller.ID] = seller.FullName()
	}

	ranking := make([]domain.SellerRankingEntry, 0, len(bySeller))
	for _, entry := range bySeller {
		entry.Name = namesByID[entry.SellerID]
		ranking = append(ranking, *entry)
	}

	// Ordenação determinística: total decrescente, empate pelo ID do
	// vendedor ascendente, independente da ordem de entrada
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalSales != ranking[j].TotalSales {
			return ranking[i].TotalSales > ranking[j].TotalSales
		}
		return ranking[i].SellerID < ranking[j].SellerID
	})

	return ranking, nil
}
