package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/nzwalks-api/api/types"
)

// Name is reported by the root endpoint
const Name = "NZ Walks Regions API"

// Response is the body of the root endpoint
type Response struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"commit"`
	BuildTime string `json:"buildTime"`
	Status    string `json:"status"`
}

// Get handles version requests
// @Summary      Service version
// @Description  Report the service name and build metadata
// @Tags         version
// @Produce      json
// @Success      200 {object} Response
// @Router       / [get]
func Get(build types.BuildInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Name:      Name,
			Version:   build.Version,
			GitCommit: build.GitCommit,
			BuildTime: build.BuildTime,
			Status:    "running",
		})
	}
}
