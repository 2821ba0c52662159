package handler

import (
	"net/http"

	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/salesflow/metrics-api/internal/usecases/forecasting"
	"github.com/salesflow/metrics-api/pkg/apiErrors"
	"github.com/salesflow/metrics-api/pkg/log"
	"github.com/salesflow/metrics-api/pkg/middleware"
)

// GetForecast retorna a previsão de receita sobre as oportunidades abertas
// do escopo do ator
func GetForecast(service forecasting.ForecastService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		scope := domain.NewAccessScope(userClaims, nil)

		logger.WithField("user_id", userClaims.UserID).Info("forecast: calculanda previsão de vendas")

		report, err := service.GetForecast(r.Context(), scope)
		if err != nil {
			logger.WithError(err).WithField("user_id", userClaims.UserID).
				Error("forecast: erro ao calcular previsão")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao obter previsão de vendas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":       userClaims.UserID,
			"opportunities": report.Summary.TotalOpportunities,
		}).Info("forecast: previsão gerada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("forecast: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
