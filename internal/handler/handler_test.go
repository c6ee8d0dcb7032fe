package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-service/internal/cache"
	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/metrics"
	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/service"
	mock_service "github.com/Dan9191/finance-service/internal/service/mocks"
)

type testServer struct {
	router *mux.Router
	store  *mock_service.MockStore
	rates  *mock_service.MockKeyRateSource
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockStore(ctrl)
	rates := mock_service.NewMockKeyRateSource(ctrl)

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := service.NewService(store, cache.Nop{}, rates, metrics.New("test"), log, &config.Config{})
	r := mux.NewRouter()
	NewHandler(svc, log).Routes(r.PathPrefix("/api").Subrouter())

	return testServer{router: r, store: store, rates: rates}
}

func (s testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestCreateTransaction(t *testing.T) {
	srv := newTestServer(t)

	var stored models.Transaction
	srv.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			tx.ID = 1
			stored = *tx
			return nil
		})
	srv.store.EXPECT().GetTransaction(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) (*models.Transaction, error) { return &stored, nil })

	rec := srv.do(http.MethodPost, "/api/transactions",
		`{"description":"Coffee","amount":4.5,"type":"expense","date":"2026-10-18"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Transaction
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, -4.5, got.Amount)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), got.Date.UTC())
	assert.Nil(t, got.CategoryID)
}

func TestCreateTransactionBadInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "wrong type for amount", body: `{"description":"x","amount":"abc","type":"expense","date":"2026-10-18"}`, wantErr: "invalid amount: must be a float64"},
		{name: "empty body", body: "", wantErr: "invalid body: is required"},
		{name: "bad date", body: `{"description":"x","amount":1,"type":"expense","date":"18/10/2026"}`, wantErr: "unsupported date format"},
		{name: "missing description", body: `{"amount":1,"type":"expense","date":"2026-10-18"}`, wantErr: "invalid description: is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)

			rec := srv.do(http.MethodPost, "/api/transactions", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, errorBody(t, rec), tt.wantErr)
		})
	}
}

func TestListTransactionsParsesFilters(t *testing.T) {
	srv := newTestServer(t)
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	category := int64(3)
	minAmount := -100.0

	srv.store.EXPECT().ListTransactions(gomock.Any(), models.TransactionFilter{
		Month:      10,
		Year:       2026,
		Search:     "coffee",
		Type:       models.TransactionExpense,
		CategoryID: &category,
		DateFrom:   &from,
		AmountMin:  &minAmount,
	}).Return([]models.Transaction{}, nil)

	rec := srv.do(http.MethodGet,
		"/api/transactions?month=10&year=2026&search=coffee&type=expense&category=3&date_from=2026-10-01&amount_min=-100", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListTransactionsBadQuery(t *testing.T) {
	for _, query := range []string{"month=oct", "category=food", "date_to=yesterday", "amount_max=lots", "type=transfer"} {
		t.Run(query, func(t *testing.T) {
			srv := newTestServer(t)
			rec := srv.do(http.MethodGet, "/api/transactions?"+query, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestErrorMapping(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		srv := newTestServer(t)
		srv.store.EXPECT().GetTransaction(gomock.Any(), int64(99)).Return(nil, models.ErrNotFound)

		rec := srv.do(http.MethodPut, "/api/transactions/99", `{"description":"x"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("storage failure is hidden", func(t *testing.T) {
		srv := newTestServer(t)
		srv.store.EXPECT().ListGoals(gomock.Any()).Return(nil, errors.New("pq: connection refused"))

		rec := srv.do(http.MethodGet, "/api/goals", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", errorBody(t, rec))
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		srv := newTestServer(t)
		srv.rates.EXPECT().KeyRate(gomock.Any()).Return(0.0, models.ErrUnavailable)

		rec := srv.do(http.MethodGet, "/api/key-rate", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("token endpoint when auth disabled", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(http.MethodPost, "/api/auth/token", `{"password":"x"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteTransaction(t *testing.T) {
	srv := newTestServer(t)
	srv.store.EXPECT().DeleteTransaction(gomock.Any(), int64(5)).Return(nil)

	rec := srv.do(http.MethodDelete, "/api/transactions/5", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMarkAlertRead(t *testing.T) {
	srv := newTestServer(t)
	srv.store.EXPECT().MarkAlertRead(gomock.Any(), int64(3)).Return(nil)
	srv.store.EXPECT().MarkAlertRead(gomock.Any(), int64(4)).Return(models.ErrNotFound)

	rec := srv.do(http.MethodPut, "/api/alerts/3/read", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = srv.do(http.MethodPut, "/api/alerts/4/read", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKeyRate(t *testing.T) {
	srv := newTestServer(t)
	srv.rates.EXPECT().KeyRate(gomock.Any()).Return(16.5, nil)

	rec := srv.do(http.MethodGet, "/api/key-rate", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key_rate":16.5}`, rec.Body.String())
}

func TestPayDebtRoute(t *testing.T) {
	srv := newTestServer(t)
	srv.store.EXPECT().PayDebt(gomock.Any(), int64(2), 150.0).
		Return(&models.Debt{ID: 2, RemainingAmount: 0, Status: models.DebtPaid}, nil)

	rec := srv.do(http.MethodPut, "/api/debts/2/payment", `{"amount":150}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Debt
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, models.DebtPaid, got.Status)
	assert.Zero(t, got.RemainingAmount)
}
