package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/flatfile"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/team"
	"github.com/vfg2006/sales-dashboard-api/pkg/countrycode"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var fixtureFiles = map[string]string{
	"sales.csv":    "id,client_id,product_id,quantity,date\n1,1,1,2,2024-11-02\n2,2,2,1,2024-10-15\n",
	"products.csv": "id,brand,model,category,price\n1,Acme,X1,Phones,10.5\n2,Acme,T1,Tablets,4\n",
	"clients.csv":  "id,registerId,name,age,phone,email,address,city,zipCode,country\n1,R-1,Ana,34,555,ana@mail.com,Rua A,Lisbon,01000,Portugal\n2,R-2,Ivan,41,556,ivan@mail.com,Ul B,Moscow,10100,Russia\n",
	"team.csv":     "id,name,email,phone,role,access\n1,Ana Silva,ana@mail.com,555,Manager,admin\n2,Rui Costa,rui@mail.com,556,Analyst,user\n5,Eva Lima,eva@mail.com,557,Analyst,user\n",
	"site_traffic.csv": "date,inbound_traffic,unique_visitors,avg_session_duration\n" +
		"2024-01-05,100,70,3.5\n" +
		"2024-01-20,200,90,4.5\n",
}

type testApp struct {
	handler http.Handler
	cfg     *config.Config
}

// newTestApp monta a aplicação completa sobre um diretório temporário e aquece o cache
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Database: config.Database{
			DataDir:      t.TempDir(),
			SalesFile:    "sales.csv",
			ProductsFile: "products.csv",
			ClientsFile:  "clients.csv",
			TeamFile:     "team.csv",
			TrafficFile:  "site_traffic.csv",
		},
		Cors:             config.Cors{AllowedOrigins: []string{"*"}},
		DashboardRefresh: config.DashboardRefresh{Interval: time.Minute, Enabled: true},
		Report:           config.Report{Period: "2024-11", GeoYear: 2024},
	}

	for name, content := range fixtureFiles {
		require.NoError(t, os.WriteFile(cfg.Database.Path(name), []byte(content), 0o644))
	}

	ctx := context.Background()
	conn, err := flatfile.NewConnection(ctx, cfg.Database)
	require.NoError(t, err)

	store := cache.New()
	rosterService := team.NewService(repository.NewTeamRepository(conn, cfg.Database), store)
	dashboardService := insighting.NewService(
		cfg,
		repository.NewSalesRepository(conn, cfg.Database),
		repository.NewTrafficRepository(conn, cfg.Database),
		rosterService,
		store,
		countrycode.New(),
	)

	refreshService := scheduler.NewDashboardRefreshService(dashboardService, store, cfg)
	require.NoError(t, refreshService.Warm(ctx))

	srv, err := New(cfg, conn, dashboardService, rosterService, refreshService)
	require.NoError(t, err)

	return &testApp{handler: srv.Handler(), cfg: cfg}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Origin", "http://localhost:3000")

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func TestServer_AddMemberScenario(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/users",
		`{"firstName":"Leo","lastName":"Reis","email":"leo@mail.com","contact":"558","role":"Intern","accessLevel":"user"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"User successfully added","id":6}`, w.Body.String())

	content, err := os.ReadFile(app.cfg.Database.Path("team.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 5) // cabeçalho + 4 membros
	assert.Equal(t, "6,Leo Reis,leo@mail.com,558,Intern,user", lines[4])

	w = app.do(t, http.MethodGet, "/api/team_data", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var members []map[string]any
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &members))
	assert.Len(t, members, 4)
}

func TestServer_AddMemberRequiresJSON(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("firstName=Leo"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"VAL_003"`)

	content, err := os.ReadFile(app.cfg.Database.Path("team.csv"))
	require.NoError(t, err)
	assert.Equal(t, fixtureFiles["team.csv"], string(content))
}

func TestServer_DeleteMemberScenario(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodDelete, "/api/users/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User with ID 9 not found")

	before, err := os.ReadFile(filepath.Join(app.cfg.Database.DataDir, "team.csv"))
	require.NoError(t, err)
	assert.Equal(t, fixtureFiles["team.csv"], string(before))

	w = app.do(t, http.MethodDelete, "/api/users/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User with ID 2 successfully deleted"}`, w.Body.String())

	w = app.do(t, http.MethodDelete, "/api/users/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_BarChartScenario(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/bar_chart_data", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"year_month":"2024-01","inbound_traffic":300,"unique_visitors":160}]`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Data-Refreshed-At"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestServer_DashboardReads(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/geo_chart_data", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"PRT","value":21},{"id":"RUS","value":4}]`, w.Body.String())

	w = app.do(t, http.MethodGet, "/api/line_chart_data?year=2024", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"2024","color":"#00ff00","data":[{"x":"Oct","y":4},{"x":"Nov","y":21}]}]`, w.Body.String())

	// ano inválido devolve todas as séries
	w = app.do(t, http.MethodGet, "/api/line_chart_data?year=dois", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var series []domain.LineSeries
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &series))
	require.NotEmpty(t, series)
	assert.Equal(t, "2024", series[len(series)-1].ID)

	for _, path := range []string{"/api/cards_data", "/api/pie_chart_data", "/api/client_data", "/api/sales_data", "/api/refresh/status", "/healthcheck"} {
		w = app.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w = app.do(t, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
