package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bank-reconciliation-backend/internal/config"
	handler "bank-reconciliation-backend/internal/handlers"
	"bank-reconciliation-backend/internal/repository"
	service "bank-reconciliation-backend/internal/services/reconciliation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *slog.Logger) {
	store := repository.NewStore(db)

	reconService := service.NewReconciliationService(
		store,
		cfg.Matching.MatchingPolicy(),
		service.WithLogger(logger),
		service.WithAutoMatchThreshold(cfg.Matching.AutoMatchThreshold),
	)

	reconHandler := handler.NewReconciliationHandler(reconService, logger)

	api := r.Group("/api")

	// Health check
	api.GET("/health", reconHandler.Health)

	secured := api.Group("", handler.RequireActingUser())

	// Statement imports per bank account
	accounts := secured.Group("/bank-accounts/:accountId")
	accounts.POST("/imports", reconHandler.Import)
	accounts.GET("/statistics", reconHandler.GetStatistics)

	// Batch routes
	imports := secured.Group("/imports")
	imports.GET("/:batchId", reconHandler.GetBatch)
	imports.GET("/:batchId/transactions", reconHandler.ListTransactions)
	imports.POST("/:batchId/auto-match", reconHandler.AutoMatch)

	// Transaction-level routes
	tx := secured.Group("/transactions")
	tx.GET("/:id/candidates", reconHandler.GetCandidates)
	tx.GET("/:id/suggestions", reconHandler.GetSuggestions)

	matches := secured.Group("/matches")
	{
		matches.POST("", reconHandler.CreateMatch)
		matches.DELETE("/:id", reconHandler.DeleteMatch)
	}

	secured.GET("/ledger-entries", reconHandler.SearchLedgerEntries)
}
