package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/service"
)

// Handler exposes the service over REST
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes registers the /api endpoints on r
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/auth/token", h.IssueToken).Methods(http.MethodPost)

	r.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet)
	r.HandleFunc("/transactions", h.CreateTransaction).Methods(http.MethodPost)
	r.HandleFunc("/transactions/summary", h.TransactionSummary).Methods(http.MethodGet)
	r.HandleFunc("/transactions/categories", h.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/transactions/categories", h.CreateCategory).Methods(http.MethodPost)
	r.HandleFunc("/transactions/categories/{id:[0-9]+}", h.DeleteCategory).Methods(http.MethodDelete)
	r.HandleFunc("/transactions/{id:[0-9]+}", h.UpdateTransaction).Methods(http.MethodPut)
	r.HandleFunc("/transactions/{id:[0-9]+}", h.DeleteTransaction).Methods(http.MethodDelete)

	r.HandleFunc("/budgets", h.ListBudgets).Methods(http.MethodGet)
	r.HandleFunc("/budgets", h.CreateBudget).Methods(http.MethodPost)
	r.HandleFunc("/budgets/{id:[0-9]+}", h.UpdateBudget).Methods(http.MethodPut)
	r.HandleFunc("/budgets/{id:[0-9]+}", h.DeleteBudget).Methods(http.MethodDelete)

	r.HandleFunc("/goals", h.ListGoals).Methods(http.MethodGet)
	r.HandleFunc("/goals", h.CreateGoal).Methods(http.MethodPost)
	r.HandleFunc("/goals/projections", h.GoalProjections).Methods(http.MethodGet)
	r.HandleFunc("/goals/{id:[0-9]+}", h.UpdateGoal).Methods(http.MethodPut)
	r.HandleFunc("/goals/{id:[0-9]+}", h.DeleteGoal).Methods(http.MethodDelete)

	r.HandleFunc("/debts", h.ListDebts).Methods(http.MethodGet)
	r.HandleFunc("/debts", h.CreateDebt).Methods(http.MethodPost)
	r.HandleFunc("/debts/{id:[0-9]+}", h.UpdateDebt).Methods(http.MethodPut)
	r.HandleFunc("/debts/{id:[0-9]+}", h.DeleteDebt).Methods(http.MethodDelete)
	r.HandleFunc("/debts/{id:[0-9]+}/payment", h.PayDebt).Methods(http.MethodPut)

	r.HandleFunc("/investments", h.ListInvestments).Methods(http.MethodGet)
	r.HandleFunc("/investments", h.CreateInvestment).Methods(http.MethodPost)
	r.HandleFunc("/investments/contributions", h.AddContribution).Methods(http.MethodPost)
	r.HandleFunc("/investments/{id:[0-9]+}", h.UpdateInvestment).Methods(http.MethodPut)
	r.HandleFunc("/investments/{id:[0-9]+}", h.DeleteInvestment).Methods(http.MethodDelete)
	r.HandleFunc("/investments/{id:[0-9]+}/contributions", h.ListContributions).Methods(http.MethodGet)

	r.HandleFunc("/emergency-fund", h.GetEmergencyFund).Methods(http.MethodGet)
	r.HandleFunc("/emergency-fund", h.UpdateEmergencyFund).Methods(http.MethodPut)
	r.HandleFunc("/emergency-fund/contribute", h.ContributeEmergencyFund).Methods(http.MethodPost)

	r.HandleFunc("/alerts", h.ListAlerts).Methods(http.MethodGet)
	r.HandleFunc("/alerts/generate", h.GenerateAlerts).Methods(http.MethodPost)
	r.HandleFunc("/alerts/{id:[0-9]+}/read", h.MarkAlertRead).Methods(http.MethodPut)

	r.HandleFunc("/insights", h.Insights).Methods(http.MethodGet)

	r.HandleFunc("/simulations", h.ListSimulations).Methods(http.MethodGet)
	r.HandleFunc("/simulations", h.Simulate).Methods(http.MethodPost)
	r.HandleFunc("/simulations/{id:[0-9]+}", h.DeleteSimulation).Methods(http.MethodDelete)

	r.HandleFunc("/key-rate", h.KeyRate).Methods(http.MethodGet)
}

// Health reports whether the database is reachable
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Health(r.Context()); err != nil {
		h.log.Errorf("Health check failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps service errors onto HTTP statuses
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr *models.FieldError
	switch {
	case errors.As(err, &fieldErr), errors.Is(err, models.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	case errors.Is(err, models.ErrUnavailable):
		h.log.Warnf("%s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	default:
		h.log.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// decodeJSON reads the request body into dst, reporting malformed input as a FieldError
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return models.NewFieldError(typeErr.Field, "must be a "+typeErr.Type.String())
		case errors.Is(err, io.EOF):
			return models.NewFieldError("body", "is required")
		default:
			return models.NewFieldError("body", err.Error())
		}
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewFieldError("id", "must be a positive integer")
	}
	return id, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewFieldError(key, "must be an integer")
	}
	return v, nil
}

func queryFloat(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, models.NewFieldError(key, "must be a number")
	}
	return &v, nil
}

func queryDate(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	var d models.Date
	if err := d.UnmarshalJSON([]byte(strconv.Quote(raw))); err != nil {
		return nil, models.NewFieldError(key, "must be YYYY-MM-DD or RFC3339")
	}
	return &d.Time, nil
}
