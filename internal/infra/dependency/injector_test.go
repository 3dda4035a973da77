package dependency_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/testutil"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

type apiHarness struct {
	t      *testing.T
	inj    *dependency.Injector
	engine *gin.Engine
}

func newHarness(t *testing.T) *apiHarness {
	t.Helper()
	cfg := &config.Config{
		JWT:       config.JWTConfig{Secret: "test-secret"},
		RateLimit: config.RateLimitConfig{Enabled: false},
		Notifier:  config.NotifierConfig{PollInterval: time.Minute, DedupeTTL: time.Hour},
	}
	inj := dependency.NewInjector(cfg, testutil.NewTestDB(t), dependency.Externals{})
	return &apiHarness{t: t, inj: inj, engine: inj.Router.Setup("test")}
}

func (h *apiHarness) token(userID uuid.UUID, isAdmin bool) string {
	h.t.Helper()
	token, err := h.inj.TokenService.GenerateAccessToken(context.Background(), userID, isAdmin, time.Hour)
	require.NoError(h.t, err)
	return token
}

func (h *apiHarness) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	h.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	rec, _ := h.do(http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "disabled", body["redis"])
}

func TestAPI_RequiresToken(t *testing.T) {
	h := newHarness(t)

	rec, env := h.do(http.MethodGet, "/api/v1/transactions", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, env.Error)
}

func TestAPI_IncomeIsAllocatedToGoal(t *testing.T) {
	h := newHarness(t)
	token := h.token(uuid.New(), false)

	rec, env := h.do(http.MethodPost, "/api/v1/goals", token, map[string]any{
		"title":                 "Emergency fund",
		"target_amount":         "1000",
		"auto_allocate":         true,
		"allocation_percentage": "10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, _ = h.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type":     "income",
		"amount":   "200",
		"category": "salary",
		"date":     "2025-01-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = h.do(http.MethodGet, "/api/v1/goals/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var goal struct {
		CurrentAmount string `json:"current_amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &goal))
	assert.Equal(t, "20.00", goal.CurrentAmount)

	rec, env = h.do(http.MethodGet, "/api/v1/goals/progress", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"percentage_saved":"2.00%"`)
}

func TestAPI_TransactionsAreOwnerScoped(t *testing.T) {
	h := newHarness(t)
	owner := h.token(uuid.New(), false)
	other := h.token(uuid.New(), false)
	admin := h.token(uuid.New(), true)

	rec, env := h.do(http.MethodPost, "/api/v1/transactions", owner, map[string]any{
		"type":     "expense",
		"amount":   "42.50",
		"category": "food",
		"tags":     []string{"lunch"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Transaction struct {
			ID string `json:"id"`
		} `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	path := "/api/v1/transactions/" + created.Transaction.ID

	rec, _ = h.do(http.MethodGet, path, other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = h.do(http.MethodGet, path, admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = h.do(http.MethodGet, "/api/v1/transactions", other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Transactions []json.RawMessage `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list.Transactions)

	rec, _ = h.do(http.MethodDelete, path, other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = h.do(http.MethodDelete, path, owner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_RejectsInvalidInput(t *testing.T) {
	h := newHarness(t)
	token := h.token(uuid.New(), false)

	rec, env := h.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type":     "transfer",
		"amount":   "10",
		"category": "misc",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, env.Code)

	rec, _ = h.do(http.MethodGet, "/api/v1/transactions/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = h.do(http.MethodGet, "/api/v1/reports?start_date=2025-02-01&end_date=2025-01-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_ExportCSV(t *testing.T) {
	h := newHarness(t)
	token := h.token(uuid.New(), false)

	rec, _ := h.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type":     "expense",
		"amount":   "12",
		"category": "books",
		"date":     "2025-03-04",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = h.do(http.MethodGet, "/api/v1/reports/export?format=csv", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,date,type,category,amount"))
	assert.Contains(t, lines[1], ",2025-03-04,expense,books,12.00,")
}
