package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/service"
	"github.com/cricketpro/cricket-scoring-service/pkg/response"
)

type TeamHandler struct {
	svc     service.TeamService
	players service.PlayerService
	matches service.MatchService
}

func NewTeamHandler(svc service.TeamService, players service.PlayerService, matches service.MatchService) *TeamHandler {
	return &TeamHandler{svc: svc, players: players, matches: matches}
}

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.GET("", h.list)
		g.POST("", h.create)
		// Use a stable wildcard name (team_id) so nested routes can reuse it without Gin conflicts.
		g.GET("/:team_id", h.getByID)
		g.PATCH("/:team_id", h.update)
		g.DELETE("/:team_id", h.delete)
		g.GET("/:team_id/players", h.listPlayers)
		g.GET("/:team_id/matches", h.listMatches)
	}
}

type createTeamRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

func (h *TeamHandler) create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // parsing details stay internal
		return
	}
	team, err := h.svc.CreateTeam(c.Request.Context(), req.Name, req.ShortName)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, team)
}

func (h *TeamHandler) getByID(c *gin.Context) {
	team, err := h.svc.GetTeam(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) list(c *gin.Context) {
	teams, err := h.svc.ListTeams(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, teams)
}

func (h *TeamHandler) update(c *gin.Context) {
	var upd model.TeamUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	team, err := h.svc.UpdateTeam(c.Request.Context(), c.Param("team_id"), upd)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteTeam(c.Request.Context(), c.Param("team_id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) listPlayers(c *gin.Context) {
	players, err := h.players.ListPlayersByTeam(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *TeamHandler) listMatches(c *gin.Context) {
	matches, err := h.matches.ListMatchesByTeam(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, matches)
}
