package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/salesflow/metrics-api/infrastructure/repository/mocks"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetSellerRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewSellerRankingService(mockSaleRepo, mockUserRepo)

	actor := &domain.Claims{UserID: 1, UserRoleID: domain.RoleManager}
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// O ranking agrega sobre todos os vendedores, sem filtro de escopo
	mockSaleRepo.EXPECT().
		ListCompleted(gomock.Any(), domain.AccessScope{}, from, to).
		Return([]*domain.Sale{
			{SellerID: 2, Total: 500, Commission: 50},
			{SellerID: 3, Total: 800, Commission: 80},
			{SellerID: 2, Total: 400, Commission: 40},
		}, nil)

	mockUserRepo.EXPECT().
		GetUsersByIDs(gomock.Any(), gomock.Any()).
		Return([]*domain.User{
			{ID: 2, Name: "Bruno", Lastname: "Lima"},
			{ID: 3, Name: "Carla", Lastname: "Dias"},
		}, nil)

	ranking, err := service.GetSellerRanking(context.Background(), actor, from, to)

	assert.NoError(t, err)
	assert.Len(t, ranking, 2)

	// Primeiro lugar: vendedor 2 com 900 em duas vendas
	assert.Equal(t, 2, ranking[0].SellerID)
	assert.Equal(t, "Bruno Lima", ranking[0].Name)
	assert.Equal(t, float64(900), ranking[0].TotalSales)
	assert.Equal(t, 2, ranking[0].SalesCount)
	assert.Equal(t, float64(90), ranking[0].Commission)

	assert.Equal(t, 3, ranking[1].SellerID)
	assert.Equal(t, float64(800), ranking[1].TotalSales)
}

func TestGetSellerRankingEmpateOrdenaPorID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewSellerRankingService(mockSaleRepo, mockUserRepo)

	actor := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Vendas chegam com o vendedor de maior ID primeiro; o empate em total
	// deve resolver pelo menor ID
	mockSaleRepo.EXPECT().
		ListCompleted(gomock.Any(), domain.AccessScope{}, from, to).
		Return([]*domain.Sale{
			{SellerID: 9, Total: 500},
			{SellerID: 4, Total: 500},
		}, nil)

	mockUserRepo.EXPECT().
		GetUsersByIDs(gomock.Any(), gomock.Any()).
		Return([]*domain.User{
			{ID: 9, Name: "Igor", Lastname: "Nunes"},
			{ID: 4, Name: "Duda", Lastname: "Alves"},
		}, nil)

	ranking, err := service.GetSellerRanking(context.Background(), actor, from, to)

	assert.NoError(t, err)
	assert.Equal(t, 4, ranking[0].SellerID)
	assert.Equal(t, 9, ranking[1].SellerID)
}

func TestGetSellerRankingVendedorRecebeListaVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewSellerRankingService(mockSaleRepo, mockUserRepo)

	actor := &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}
	now := time.Now()

	// Nenhuma chamada ao repositório deve acontecer
	ranking, err := service.GetSellerRanking(context.Background(), actor, now.AddDate(0, -1, 0), now)

	assert.NoError(t, err)
	assert.Empty(t, ranking)
}
