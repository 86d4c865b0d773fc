package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	service "bank-reconciliation-backend/internal/services/reconciliation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReconciliationHandler struct {
	service *service.ReconciliationService
	logger  *slog.Logger
}

func NewReconciliationHandler(s *service.ReconciliationService, logger *slog.Logger) *ReconciliationHandler {
	return &ReconciliationHandler{service: s, logger: logger}
}

func (h *ReconciliationHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Import stores a pre-parsed statement for a bank account.
func (h *ReconciliationHandler) Import(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId", "bank account")
	if !ok {
		return
	}

	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid payload")
		return
	}

	batch, err := h.service.Import(c.Request.Context(), actingUser(c), accountID, req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, batch)
}

func (h *ReconciliationHandler) GetStatistics(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId", "bank account")
	if !ok {
		return
	}

	stats, err := h.service.GetStatistics(c.Request.Context(), actingUser(c), accountID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReconciliationHandler) GetBatch(c *gin.Context) {
	batchID, ok := uuidParam(c, "batchId", "batch")
	if !ok {
		return
	}

	batch, err := h.service.GetBatch(c.Request.Context(), actingUser(c), batchID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (h *ReconciliationHandler) ListTransactions(c *gin.Context) {
	batchID, ok := uuidParam(c, "batchId", "batch")
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	page, err := h.service.ListTransactions(c.Request.Context(), actingUser(c), batchID, service.ListQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Cursor: c.Query("cursor"),
		Limit:  limit,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ReconciliationHandler) AutoMatch(c *gin.Context) {
	batchID, ok := uuidParam(c, "batchId", "batch")
	if !ok {
		return
	}

	result, err := h.service.AutoMatchBatch(c.Request.Context(), actingUser(c), batchID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReconciliationHandler) GetCandidates(c *gin.Context) {
	txID, ok := uuidParam(c, "id", "transaction")
	if !ok {
		return
	}

	entries, err := h.service.FetchCandidates(c.Request.Context(), actingUser(c), txID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func (h *ReconciliationHandler) GetSuggestions(c *gin.Context) {
	txID, ok := uuidParam(c, "id", "transaction")
	if !ok {
		return
	}

	suggestion, err := h.service.SuggestMatches(c.Request.Context(), actingUser(c), txID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func (h *ReconciliationHandler) CreateMatch(c *gin.Context) {
	var req service.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid payload")
		return
	}
	if req.ImportedTransactionID == uuid.Nil || req.LedgerEntryID == uuid.Nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeValidation, "imported_transaction_id and ledger_entry_id are required")
		return
	}

	match, err := h.service.CreateManualMatch(c.Request.Context(), actingUser(c), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

func (h *ReconciliationHandler) DeleteMatch(c *gin.Context) {
	matchID, ok := uuidParam(c, "id", "match")
	if !ok {
		return
	}

	if err := h.service.RemoveMatch(c.Request.Context(), actingUser(c), matchID); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchLedgerEntries accepts q, amount and a comma separated status list.
func (h *ReconciliationHandler) SearchLedgerEntries(c *gin.Context) {
	search := service.LedgerSearch{Query: strings.TrimSpace(c.Query("q"))}

	if raw := c.Query("amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid amount")
			return
		}
		search.Amount = amount
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				search.Statuses = append(search.Statuses, s)
			}
		}
	}
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}
	search.Limit = limit

	entries, err := h.service.SearchLedgerEntries(c.Request.Context(), actingUser(c), search)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func uuidParam(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		abortWithError(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}
