package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bank-reconciliation-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderTenantID = "X-Tenant-ID"

	actingUserKey = "acting_user"
)

// RequireActingUser resolves the caller from the identity headers set by
// the gateway. Requests without a valid user and tenant are rejected.
func RequireActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.GetHeader(HeaderUserID))
		if err != nil || userID == uuid.Nil {
			abortWithError(c, http.StatusUnauthorized, ErrCodeUnauthorized, "User ID required in "+HeaderUserID+" header")
			return
		}
		tenantID, err := uuid.Parse(c.GetHeader(HeaderTenantID))
		if err != nil || tenantID == uuid.Nil {
			abortWithError(c, http.StatusUnauthorized, ErrCodeUnauthorized, "Tenant ID required in "+HeaderTenantID+" header")
			return
		}

		c.Set(actingUserKey, models.ActingUser{ID: userID, TenantID: tenantID})
		c.Next()
	}
}

func actingUser(c *gin.Context) models.ActingUser {
	user, _ := c.MustGet(actingUserKey).(models.ActingUser)
	return user
}

// RequestLogger logs one line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
