package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cricketpro/cricket-scoring-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, teamSvc service.TeamService, playerSvc service.PlayerService, matchSvc service.MatchService, data *DataHandler) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIPrefix)
	{
		NewTeamHandler(teamSvc, playerSvc, matchSvc).Register(api)
		NewPlayerHandler(playerSvc).Register(api)
		NewMatchHandler(matchSvc).Register(api)
		if data != nil {
			data.Register(api)
		}
	}
}
