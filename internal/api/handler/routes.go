package handler

import (
	"net/http"

	"github.com/vfg2006/clinic-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/clinic-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/clinic-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/clinic-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/clinic-dashboard-api/pkg/middleware"
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

func ClinicDashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clinics/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetClinicMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ClinicScope()},
		},
		{
			Path:        "/v1/clinics/:id/kpis",
			Method:      http.MethodGet,
			Handler:     GetClinicKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ClinicScope()},
		},
		{
			Path:        "/v1/clinics/:id/procedures",
			Method:      http.MethodGet,
			Handler:     GetClinicProcedures(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ClinicScope()},
		},
	}
}

func ClinicTokens(authorizer authorizing.Authorizer, clinicRepo repository.ClinicRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clinics/:id/token",
			Method:      http.MethodPost,
			Handler:     IssueClinicToken(authorizer, clinicRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
