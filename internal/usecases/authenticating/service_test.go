package authenticating

import (
	"context"
	"testing"

	"github.com/salesflow/metrics-api/infrastructure/repository/mocks"
	"github.com/salesflow/metrics-api/internal/config"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	return cfg
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{
		ID:           1,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@salesflow.com",
		PasswordHash: hashPassword(t, "secret123"),
		Active:       true,
		RoleID:       domain.RoleManager,
	}

	// O email é normalizado antes da consulta
	mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@salesflow.com").
		Return(user, nil)

	token, err := service.LoginUser(context.Background(), "  Ana@Salesflow.com ", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// O token emitido deve validar e carregar os claims do usuário
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.UserRoleID)
}

func TestLoginUserSenhaIncorreta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{
		ID:           1,
		Email:        "ana@salesflow.com",
		PasswordHash: hashPassword(t, "secret123"),
		Active:       true,
	}

	mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@salesflow.com").
		Return(user, nil)

	_, err := service.LoginUser(context.Background(), "ana@salesflow.com", "wrong")

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserContaDesativada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{
		ID:           1,
		Email:        "ana@salesflow.com",
		PasswordHash: hashPassword(t, "secret123"),
		Active:       false,
	}

	mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@salesflow.com").
		Return(user, nil)

	_, err := service.LoginUser(context.Background(), "ana@salesflow.com", "secret123")

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUserUsuarioInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@salesflow.com").
		Return(nil, nil)

	_, err := service.LoginUser(context.Background(), "ghost@salesflow.com", "secret123")

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginUserCamposObrigatorios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	_, err := service.LoginUser(context.Background(), "", "secret123")
	assert.Error(t, err)

	_, err = service.LoginUser(context.Background(), "ana@salesflow.com", "")
	assert.Error(t, err)
}

func TestValidateTokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
