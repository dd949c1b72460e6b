package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/team"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func Healthcheck(storage Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(storage),
		},
	}
}

func Dashboard(service insighting.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cards_data",
			Method:  http.MethodGet,
			Handler: GetCards(service),
		},
		{
			Path:    "/api/geo_chart_data",
			Method:  http.MethodGet,
			Handler: GetGeoChart(service),
		},
		{
			Path:    "/api/line_chart_data",
			Method:  http.MethodGet,
			Handler: GetLineChart(service),
		},
		{
			Path:    "/api/bar_chart_data",
			Method:  http.MethodGet,
			Handler: GetBarChart(service),
		},
		{
			Path:    "/api/pie_chart_data",
			Method:  http.MethodGet,
			Handler: GetPieChart(service),
		},
		{
			Path:    "/api/team_data",
			Method:  http.MethodGet,
			Handler: GetTeam(service),
		},
		{
			Path:    "/api/client_data",
			Method:  http.MethodGet,
			Handler: GetClients(service),
		},
		{
			Path:    "/api/sales_data",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
	}
}

func Team(service team.Roster) []router.Route {
	return []router.Route{
		{
			Path:        "/api/users",
			Method:      http.MethodPost,
			Handler:     AddTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireJSON},
		},
		{
			Path:    "/api/users/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTeamMember(service),
		},
	}
}

func Refresh(service scheduler.RefreshController) []router.Route {
	return []router.Route{
		{
			Path:    "/api/refresh/run",
			Method:  http.MethodPost,
			Handler: RunRefresh(service),
		},
		{
			Path:    "/api/refresh/status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(service),
		},
	}
}
