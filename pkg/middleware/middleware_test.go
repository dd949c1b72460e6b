package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		expectedHeader string
	}{
		{"qualquer origem", []string{"*"}, "http://localhost:3000", "*"},
		{"lista vazia libera tudo", nil, "http://localhost:3000", "*"},
		{"origem permitida", []string{"http://localhost:3000"}, "http://localhost:3000", "http://localhost:3000"},
		{"origem bloqueada", []string{"http://localhost:3000"}, "http://evil.test", ""},
		{"sem Origin", []string{"*"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/cards_data", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCors_PreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	Cors([]string{"*"})(next).ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, w.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		LogPanicMiddleware()(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sales_data", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"SRV_001","error":"Erro interno no servidor"}`, w.Body.String())
}

func TestRequireJSON(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		expectedStatus int
	}{
		{"json", "application/json", http.StatusOK},
		{"json com charset", "application/json; charset=utf-8", http.StatusOK},
		{"sufixo +json", "application/merge-patch+json", http.StatusOK},
		{"formulário", "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"sem Content-Type", "", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			w := httptest.NewRecorder()
			RequireJSON(okHandler).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.JSONEq(t, `{"code":"VAL_003","error":"Content-Type must be application/json"}`, w.Body.String())
			}
		})
	}
}
