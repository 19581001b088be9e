package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/service"
	"github.com/cricketpro/cricket-scoring-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.GET("", h.list)
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.PATCH("/:id", h.update)
		g.DELETE("/:id", h.delete)

		// Live scoring lifecycle
		g.POST("/:id/start", h.start)
		g.POST("/:id/balls", h.recordBall)
		g.POST("/:id/innings", h.switchInnings)
		g.POST("/:id/complete", h.complete)
	}
}

type createMatchRequest struct {
	Team1ID      string `json:"team1Id"`
	Team2ID      string `json:"team2Id"`
	Format       string `json:"format"`
	Venue        string `json:"venue"`
	Date         string `json:"date"` // RFC3339, optional
	TossWinner   string `json:"tossWinner"`
	TossDecision string `json:"tossDecision"`
}

func (h *MatchHandler) create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "date", Message: "must be RFC 3339"}}))
			return
		}
		date = parsed
	}
	match, err := h.svc.CreateMatch(c.Request.Context(), service.CreateMatchInput{
		Team1ID:      req.Team1ID,
		Team2ID:      req.Team2ID,
		Format:       req.Format,
		Venue:        req.Venue,
		Date:         date,
		TossWinner:   req.TossWinner,
		TossDecision: req.TossDecision,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, match)
}

func (h *MatchHandler) getByID(c *gin.Context) {
	match, err := h.svc.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) list(c *gin.Context) {
	matches, err := h.svc.ListMatches(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, matches)
}

func (h *MatchHandler) update(c *gin.Context) {
	var upd model.MatchUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	match, err := h.svc.UpdateMatch(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteMatch(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MatchHandler) start(c *gin.Context) {
	match, err := h.svc.StartMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) recordBall(c *gin.Context) {
	var in service.BallInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	match, err := h.svc.RecordBall(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) switchInnings(c *gin.Context) {
	match, err := h.svc.SwitchInnings(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) complete(c *gin.Context) {
	match, err := h.svc.CompleteMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}
