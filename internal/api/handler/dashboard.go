package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// snapshotHandler serve um slot do cache; todas as leituras do dashboard seguem este formato
func snapshotHandler[T any](resource string, read func(r *http.Request) (T, time.Time, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, refreshedAt, err := read(r)
		if err != nil {
			writeDashboardError(w, r, resource, err)
			return
		}

		writeSnapshot(w, data, refreshedAt)
	}
}

func writeDashboardError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	logger := log.ForContext(r.Context()).WithError(err).WithField("resource", resource)

	switch {
	case errors.Is(err, insighting.ErrCacheNotReady):
		logger.Warn("Cache do dashboard ainda não carregado")
		apiErrors.WriteError(w, apiErrors.ErrCacheNotReady, err.Error(), nil)
	default:
		logger.Error("Erro ao ler dados do dashboard")
		apiErrors.WriteError(w, apiErrors.ErrComputation, err.Error(), nil)
	}
}

// parseYear lê o parâmetro opcional ?year=YYYY; valor não numérico ou zero significa sem filtro
func parseYear(r *http.Request) *int {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year == 0 {
		return nil
	}

	return &year
}

func GetCards(service insighting.Dashboard) http.HandlerFunc {
	return snapshotHandler("cards_data", func(*http.Request) (*domain.DashboardCards, time.Time, error) {
		return service.Cards()
	})
}

func GetGeoChart(service insighting.Dashboard) http.HandlerFunc {
	return snapshotHandler("geo_chart_data", func(*http.Request) ([]domain.GeoItem, time.Time, error) {
		return service.GeoChart()
	})
}

// GetLineChart aceita ?year=YYYY para devolver apenas a série daquele ano
func GetLineChart(service insighting.Dashboard) http.HandlerFunc {
	return snapshotHandler("line_chart_data", func(r *http.Request) ([]domain.LineSeries, time.Time, error) {
		return service.LineChart(parseYear(r))
	})
}

func GetBarChart(service insighting.Dashboard) http.HandlerFunc {
	return snapshotHandler("bar_chart_data", func(*http.Request) ([]domain.BarChartItem, time.Time, error) {
		return service.BarChart()
	})
}

func GetPieChart(service insighting.Dashboard) http.HandlerFunc {
	return snapshotHandler("pie_chart_data", func(*http.Request) ([]domain.PieSlice, time.Time, error) {
		return service.PieChart()
	})
}

func GetTeam(service insighting.Dashboard) http.HandlerFunc {
	return snapshotHandler("team_data", func(*http.Request) ([]domain.TeamMember, time.Time, error) {
		return service.Team()
	})
}

func GetClients(service insighting.Dashboard) http.HandlerFunc {
	return snapshotHandler("client_data", func(*http.Request) ([]domain.Client, time.Time, error) {
		return service.Clients()
	})
}

func GetSales(service insighting.Dashboard) http.HandlerFunc {
	return snapshotHandler("sales_data", func(*http.Request) ([]domain.JoinedSale, time.Time, error) {
		return service.Sales()
	})
}
