package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/nzwalks-api/api/types"
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service liveness and database reachability
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse "Service healthy"
// @Failure      503 {object} types.HealthResponse "Database unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  getDatabaseStatus(deps),
		}

		code := http.StatusOK
		if response.Database["status"] == "unhealthy" {
			response.Status = "unhealthy"
			code = apperrors.New(apperrors.ErrCodeServiceDown, "database unreachable").GetHTTPCode()
			deps.Logger.Warn().Str("error", response.Database["error"]).Msg("Health check failed")
		}

		c.JSON(code, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) map[string]string {
	if deps == nil || deps.DB == nil {
		return map[string]string{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
			"code":   string(apperrors.ErrCodeServiceDown),
		}
	}

	return map[string]string{"status": "healthy"}
}
