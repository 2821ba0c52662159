package handler

import (
	"net/http"

	"github.com/salesflow/metrics-api/internal/usecases/reporting"
	"github.com/salesflow/metrics-api/pkg/apiErrors"
	"github.com/salesflow/metrics-api/pkg/log"
)

// GetCustomerSummary retorna o resumo estatístico da base de clientes
func GetCustomerSummary(service reporting.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.GetCustomerSummary(r.Context())
		if err != nil {
			logger.WithError(err).Error("customers: erro ao calcular resumo de clientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao obter resumo de clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("customers: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
