package handler

import (
	"net/http"

	"github.com/salesflow/metrics-api/internal/domain"
	"github.com/salesflow/metrics-api/internal/usecases/reporting"
	"github.com/salesflow/metrics-api/pkg/apiErrors"
	"github.com/salesflow/metrics-api/pkg/log"
	"github.com/salesflow/metrics-api/pkg/middleware"
	"github.com/salesflow/metrics-api/pkg/utils"
)

const defaultSeriesMonths = 6

// GetPeriodMetrics retorna o snapshot de métricas do dashboard para o período
// solicitado. Período ausente ou desconhecido cai no padrão mensal.
func GetPeriodMetrics(service reporting.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		period := domain.ParsePeriod(r.URL.Query().Get("period"))

		logger.WithFields(log.Fields{
			"user_id": userClaims.UserID,
			"period":  period,
		}).Info("dashboard: calculando métricas do período")

		metrics, err := service.GetPeriodMetrics(r.Context(), userClaims, period)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"user_id": userClaims.UserID,
				"period":  period,
			}).Error("dashboard: erro ao calcular métricas do período")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao obter métricas do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetSalesSeries retorna a série mensal de vendas realizadas.
// O parâmetro months deve ser um inteiro positivo; inválido falha a
// requisição antes de qualquer agregação.
func GetSalesSeries(service reporting.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		months, err := utils.ParsePositiveInt(r.URL.Query().Get("months"), defaultSeriesMonths)
		if err != nil {
			logger.WithFields(log.Fields{
				"months": r.URL.Query().Get("months"),
				"error":  err.Error(),
			}).Warn("sales-series: parâmetro months inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, err.Error(), nil)
			return
		}

		series, err := service.GetSalesSeries(r.Context(), userClaims, months)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"user_id": userClaims.UserID,
				"months":  months,
			}).Error("sales-series: erro ao calcular série de vendas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao obter série de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("sales-series: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
