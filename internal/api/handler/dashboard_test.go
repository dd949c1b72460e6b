package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

var refreshedAt = time.Date(2024, 11, 20, 12, 30, 0, 0, time.UTC)

func TestGetBarChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboard(ctrl)

	service.EXPECT().BarChart().Return([]domain.BarChartItem{
		{YearMonth: "2024-01", InboundTraffic: 300, UniqueVisitors: 230},
	}, refreshedAt, nil)

	w := httptest.NewRecorder()
	GetBarChart(service).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bar_chart_data", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "2024-11-20T12:30:00Z", w.Header().Get(RefreshedAtHeader))
	assert.JSONEq(t, `[{"year_month":"2024-01","inbound_traffic":300,"unique_visitors":230}]`, w.Body.String())
}

func TestGetLineChart(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setup          func(service *mocks.MockDashboard)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "sem filtro",
			query: "",
			setup: func(service *mocks.MockDashboard) {
				service.EXPECT().LineChart(gomock.Nil()).Return([]domain.LineSeries{}, refreshedAt, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:  "com ano",
			query: "?year=2023",
			setup: func(service *mocks.MockDashboard) {
				service.EXPECT().LineChart(gomock.Any()).DoAndReturn(func(year *int) ([]domain.LineSeries, time.Time, error) {
					require.NotNil(t, year)
					assert.Equal(t, 2023, *year)
					return []domain.LineSeries{{ID: "2023", Color: "#00ff00", Data: []domain.LinePoint{{X: "Jan", Y: 1.5}}}}, refreshedAt, nil
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":"2023","color":"#00ff00","data":[{"x":"Jan","y":1.5}]}]`,
		},
		{
			name:  "ano não numérico é ignorado",
			query: "?year=abc",
			setup: func(service *mocks.MockDashboard) {
				service.EXPECT().LineChart(gomock.Nil()).Return([]domain.LineSeries{{ID: "2024", Color: "#00ff00", Data: []domain.LinePoint{}}}, refreshedAt, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":"2024","color":"#00ff00","data":[]}]`,
		},
		{
			name:  "ano zero é ignorado",
			query: "?year=0",
			setup: func(service *mocks.MockDashboard) {
				service.EXPECT().LineChart(gomock.Nil()).Return([]domain.LineSeries{}, refreshedAt, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboard(ctrl)
			tt.setup(service)

			w := httptest.NewRecorder()
			GetLineChart(service).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/line_chart_data"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "2024-11-20T12:30:00Z", w.Header().Get(RefreshedAtHeader))
		})
	}
}

func TestGetCards_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "cache frio",
			err:            errors.Join(insighting.ErrCacheNotReady, cache.ErrSlotCold),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   `"code":"SRV_004"`,
		},
		{
			name:           "falha de cálculo",
			err:            cache.ErrTypeMismatch,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   `"code":"SRV_003"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboard(ctrl)
			service.EXPECT().Cards().Return(nil, time.Time{}, tt.err)

			w := httptest.NewRecorder()
			GetCards(service).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cards_data", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedCode)
			assert.Contains(t, w.Body.String(), `"error":`)
			assert.Empty(t, w.Header().Get(RefreshedAtHeader))
		})
	}
}

func TestSnapshotReaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboard(ctrl)

	share := 0.25
	service.EXPECT().Cards().Return(&domain.DashboardCards{Period: "2024-11", Orders: 3, PercentageDiffOrders: &share}, refreshedAt, nil)
	service.EXPECT().GeoChart().Return([]domain.GeoItem{{ID: "BRA", Value: 10}}, refreshedAt, nil)
	service.EXPECT().PieChart().Return([]domain.PieSlice{}, refreshedAt, nil)
	service.EXPECT().Team().Return([]domain.TeamMember{{ID: 1, Name: "Ana Silva"}}, refreshedAt, nil)
	service.EXPECT().Clients().Return([]domain.Client{{ID: 7, Name: "Rui"}}, refreshedAt, nil)
	service.EXPECT().Sales().Return([]domain.JoinedSale{{SaleID: 1}}, refreshedAt, nil)

	handlers := map[string]http.HandlerFunc{
		"cards":   GetCards(service),
		"geo":     GetGeoChart(service),
		"pie":     GetPieChart(service),
		"team":    GetTeam(service),
		"clients": GetClients(service),
		"sales":   GetSales(service),
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "2024-11-20T12:30:00Z", w.Header().Get(RefreshedAtHeader))
			assert.NotEmpty(t, w.Body.String())
		})
	}
}
