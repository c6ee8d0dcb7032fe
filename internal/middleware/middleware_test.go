package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-service/internal/metrics"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func signed(t *testing.T, secret string, method jwt.SigningMethod, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuth(t *testing.T) {
	var subject interface{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = r.Context().Value(SubjectKey)
		w.WriteHeader(http.StatusNoContent)
	})
	h := Auth("secret", quietLogger(), "/api/auth/token")(next)

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "public path", path: "/api/auth/token", wantStatus: http.StatusNoContent},
		{name: "missing token", path: "/api/goals", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", path: "/api/goals", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", path: "/api/goals", header: "Bearer " + signed(t, "other", jwt.SigningMethodHS256, time.Now().Add(time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "expired", path: "/api/goals", header: "Bearer " + signed(t, "secret", jwt.SigningMethodHS256, time.Now().Add(-time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "wrong algorithm", path: "/api/goals", header: "Bearer " + signed(t, "secret", jwt.SigningMethodHS512, time.Now().Add(time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "valid", path: "/api/goals", header: "Bearer " + signed(t, "secret", jwt.SigningMethodHS256, time.Now().Add(time.Hour)), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, "admin", subject)
}

func TestRequestLogger(t *testing.T) {
	h := RequestLogger(quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.New("test")
	registry := prometheus.NewRegistry()
	require.NoError(t, m.Register(registry))

	r := mux.NewRouter()
	r.Use(Metrics(m))
	r.HandleFunc("/api/goals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/goals/"+id, nil))
	}

	families, err := registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "test_http_requests_total" {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		labels := map[string]string{}
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		assert.Equal(t, "/api/goals/{id}", labels["endpoint"])
		assert.Equal(t, "Not Found", labels["status"])
		assert.Equal(t, 2.0, mf.GetMetric()[0].GetCounter().GetValue())
		return
	}
	t.Fatal("http requests metric not gathered")
}
