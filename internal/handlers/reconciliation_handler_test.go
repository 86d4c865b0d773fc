package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-reconciliation-backend/internal/config"
	handler "bank-reconciliation-backend/internal/handlers"
	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/repository"
	"bank-reconciliation-backend/internal/routes"
	"bank-reconciliation-backend/internal/services/matching"
	service "bank-reconciliation-backend/internal/services/reconciliation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	user   models.ActingUser
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.InitDB(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, config.LoggingConfig{Level: "error"})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	cfg := &config.Config{Matching: config.MatchingConfig{AutoMatchThreshold: config.DefaultAutoMatchThreshold}}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &testServer{
		router: r,
		db:     db,
		user:   models.ActingUser{ID: uuid.New(), TenantID: uuid.New()},
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handler.HeaderUserID, s.user.ID.String())
	req.Header.Set(handler.HeaderTenantID, s.user.TenantID.String())

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) postedEntry(t *testing.T, date time.Time, amount, description string) models.LedgerEntry {
	t.Helper()
	entry := models.LedgerEntry{
		ID:          uuid.New(),
		TenantID:    s.user.TenantID,
		EntryNumber: "JE-1",
		Description: description,
		EntryDate:   date,
		TotalDebit:  decimal.RequireFromString(amount),
		Status:      models.LedgerStatusPosted,
	}
	require.NoError(t, s.db.Create(&entry).Error)
	return entry
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.APIError {
	t.Helper()
	var body struct {
		Error handler.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequireActingUser(t *testing.T) {
	s := newTestServer(t)
	path := "/api/bank-accounts/" + uuid.NewString() + "/statistics"

	tests := []struct {
		name   string
		userID string
		tenant string
	}{
		{"no headers", "", ""},
		{"bad user id", "nope", uuid.NewString()},
		{"missing tenant", uuid.NewString(), ""},
		{"nil tenant", uuid.NewString(), uuid.Nil.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if tt.userID != "" {
				req.Header.Set(handler.HeaderUserID, tt.userID)
			}
			if tt.tenant != "" {
				req.Header.Set(handler.HeaderTenantID, tt.tenant)
			}
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, handler.ErrCodeUnauthorized, decodeError(t, rec).Code)
		})
	}
}

func TestReconciliationFlow(t *testing.T) {
	s := newTestServer(t)
	account := uuid.NewString()

	rec := s.do(t, http.MethodPost, "/api/bank-accounts/"+account+"/imports", service.ImportRequest{
		FileName: "jan.csv",
		Rows: []service.ImportRow{
			{Date: "2024-01-10", Description: "ACME FUEL", Debit: decimal.RequireFromString("50.00")},
			{Date: "2024-01-11", Description: "Parking", Debit: decimal.RequireFromString("20.00")},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var batch models.ImportBatch
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&batch))
	assert.Equal(t, models.BatchStatusCompleted, batch.Status)
	assert.Equal(t, 2, batch.TotalTransactions)

	rec = s.do(t, http.MethodGet, "/api/imports/"+batch.ID.String()+"/transactions?search=fuel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page service.TransactionPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	fuel := page.Items[0]

	entry := s.postedEntry(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "50.00", "acme fuel")

	rec = s.do(t, http.MethodGet, "/api/transactions/"+fuel.ID.String()+"/suggestions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var suggestion service.Suggestion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&suggestion))
	require.Len(t, suggestion.SuggestedMatches, 1)
	assert.Equal(t, entry.ID, suggestion.SuggestedMatches[0].LedgerEntryID)
	assert.Contains(t, suggestion.SuggestedMatches[0].Reasons, matching.ReasonExactAmount)

	rec = s.do(t, http.MethodGet, "/api/transactions/"+fuel.ID.String()+"/candidates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), entry.ID.String())

	matchReq := map[string]interface{}{
		"imported_transaction_id": fuel.ID,
		"ledger_entry_id":         entry.ID,
		"match_amount":            "50.00",
		"notes":                   "receipt on file",
	}
	rec = s.do(t, http.MethodPost, "/api/matches", matchReq)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var match models.ReconciliationMatch
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&match))
	assert.Equal(t, models.MatchTypeManual, match.MatchType)

	rec = s.do(t, http.MethodPost, "/api/matches", matchReq)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, handler.ErrCodeConflict, decodeError(t, rec).Code)

	rec = s.do(t, http.MethodGet, "/api/bank-accounts/"+account+"/statistics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats service.Statistics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 2, stats.TotalImported)
	assert.Equal(t, 1, stats.TotalMatched)
	assert.InDelta(t, 50.0, stats.MatchingPercentage, 1e-9)

	rec = s.do(t, http.MethodDelete, "/api/matches/"+match.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/matches/"+match.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, handler.ErrCodeNotFound, decodeError(t, rec).Code)

	rec = s.do(t, http.MethodGet, "/api/imports/"+batch.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stored models.ImportBatch
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stored))
	assert.Equal(t, 2, stored.UnmatchedTransactions)
}

func TestAutoMatchEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/bank-accounts/"+uuid.NewString()+"/imports", service.ImportRequest{
		Rows: []service.ImportRow{{Date: "2024-01-10", Description: "ACME FUEL", Debit: decimal.NewFromInt(50)}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var batch models.ImportBatch
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&batch))
	s.postedEntry(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), "50.00", "acme fuel")

	rec = s.do(t, http.MethodPost, "/api/imports/"+batch.ID.String()+"/auto-match", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"examined":1,"matched":1,"skipped":0}`, rec.Body.String())
}

func TestImport_RejectsBadRows(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/bank-accounts/"+uuid.NewString()+"/imports", service.ImportRequest{
		Rows: []service.ImportRow{{Date: "yesterday", Description: "ACME"}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handler.ErrCodeValidation, decodeError(t, rec).Code)
}

func TestBadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{"bad account id", http.MethodPost, "/api/bank-accounts/xyz/imports", service.ImportRequest{}, http.StatusBadRequest, handler.ErrCodeBadRequest},
		{"bad batch id", http.MethodGet, "/api/imports/xyz", nil, http.StatusBadRequest, handler.ErrCodeBadRequest},
		{"unknown batch", http.MethodGet, "/api/imports/" + uuid.NewString(), nil, http.StatusNotFound, handler.ErrCodeNotFound},
		{"non-numeric limit", http.MethodGet, "/api/imports/" + uuid.NewString() + "/transactions?limit=abc", nil, http.StatusBadRequest, handler.ErrCodeBadRequest},
		{"unknown transaction", http.MethodGet, "/api/transactions/" + uuid.NewString() + "/suggestions", nil, http.StatusNotFound, handler.ErrCodeNotFound},
		{"match without ids", http.MethodPost, "/api/matches", map[string]string{"notes": "x"}, http.StatusBadRequest, handler.ErrCodeValidation},
		{"bad ledger amount", http.MethodGet, "/api/ledger-entries?amount=lots", nil, http.StatusBadRequest, handler.ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestListTransactions_InvalidStatus(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/api/bank-accounts/"+uuid.NewString()+"/imports", service.ImportRequest{})
	require.Equal(t, http.StatusCreated, rec.Code)
	var batch models.ImportBatch
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&batch))

	rec = s.do(t, http.MethodGet, "/api/imports/"+batch.ID.String()+"/transactions?status=pending", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handler.ErrCodeValidation, decodeError(t, rec).Code)
}

func TestSearchLedgerEntries(t *testing.T) {
	s := newTestServer(t)
	s.postedEntry(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "50.00", "acme fuel")
	s.postedEntry(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), "80.00", "rent")

	rec := s.do(t, http.MethodGet, "/api/ledger-entries?q=acme&status=posted", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items []models.LedgerEntry `json:"items"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "acme fuel", body.Items[0].Description)
}
