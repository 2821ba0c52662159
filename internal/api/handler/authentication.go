package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/salesflow/metrics-api/internal/usecases/authenticating"
	"github.com/salesflow/metrics-api/pkg/apiErrors"
	"github.com/salesflow/metrics-api/pkg/log"
	"github.com/salesflow/metrics-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			logger.WithError(err).Error("me: erro ao obter dados do usuário")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logger.WithError(err).Error("me: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		logger.WithError(err).Warn("login: falha de autenticação")
		apiErrors.WriteError(w, authErr.Code, "Falha na autenticação", nil)
		return
	}

	logger.WithError(err).Error("login: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
