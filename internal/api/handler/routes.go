package handler

import (
	"net/http"

	"github.com/salesflow/metrics-api/internal/api/handler/router"
	"github.com/salesflow/metrics-api/internal/usecases/authenticating"
	"github.com/salesflow/metrics-api/internal/usecases/forecasting"
	"github.com/salesflow/metrics-api/internal/usecases/funneling"
	"github.com/salesflow/metrics-api/internal/usecases/reporting"
	"github.com/salesflow/metrics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service reporting.MetricsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/metrics",
			Method:      http.MethodGet,
			Handler:     GetPeriodMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sales-series",
			Method:      http.MethodGet,
			Handler:     GetSalesSeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Forecast(service forecasting.ForecastService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/forecast",
			Method:      http.MethodGet,
			Handler:     GetForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Funnel(service funneling.FunnelService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/opportunities/funnel",
			Method:      http.MethodGet,
			Handler:     GetFunnelStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Customers(service reporting.MetricsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers/summary",
			Method:      http.MethodGet,
			Handler:     GetCustomerSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}
