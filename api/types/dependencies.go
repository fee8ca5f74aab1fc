package types

import (
	"github.com/killallgit/nzwalks-api/internal/database"
	"github.com/killallgit/nzwalks-api/internal/services/regions"
	"github.com/rs/zerolog"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               database.Conn
	RegionRepository regions.Repository
	Logger           zerolog.Logger
	Build            BuildInfo
}
