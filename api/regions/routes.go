package regions

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/nzwalks-api/api/types"
)

// RegisterRoutes registers region management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListRegions(deps))
	router.GET("/:id", GetRegion(deps))
	router.POST("", CreateRegion(deps))
	router.PUT("/:id", UpdateRegion(deps))
	router.DELETE("/:id", DeleteRegion(deps))
}
