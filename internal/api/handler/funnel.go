package handler

import (
	"net/http"

	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/salesflow/metrics-api/internal/usecases/funneling"
	"github.com/salesflow/metrics-api/pkg/apiErrors"
	"github.com/salesflow/metrics-api/pkg/log"
	"github.com/salesflow/metrics-api/pkg/middleware"
)

// GetFunnelStats retorna as estatísticas do funil de vendas do escopo do ator
func GetFunnelStats(service funneling.FunnelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		scope := domain.NewAccessScope(userClaims, nil)

		stats, err := service.GetFunnelStats(r.Context(), scope)
		if err != nil {
			logger.WithError(err).WithField("user_id", userClaims.UserID).
				Error("funnel: erro ao calcular estatísticas do funil")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao obter estatísticas do funil", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("funnel: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
