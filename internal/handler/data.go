package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/service"
	"github.com/cricketpro/cricket-scoring-service/internal/snapshot"
	"github.com/cricketpro/cricket-scoring-service/pkg/response"
)

// DataHandler exposes the snapshot surface: export, additive import, backup
// to the file store and explicit reconciliation.
type DataHandler struct {
	mgr        *snapshot.Manager
	files      *snapshot.FileStore
	reconciler *snapshot.Reconciler
}

func NewDataHandler(mgr *snapshot.Manager, files *snapshot.FileStore, reconciler *snapshot.Reconciler) *DataHandler {
	return &DataHandler{mgr: mgr, files: files, reconciler: reconciler}
}

func (h *DataHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/data")
	{
		g.GET("/export", h.export)
		g.POST("/import", h.importSnapshot)
		g.POST("/backup", h.backup)
		g.POST("/reconcile", h.reconcile)
	}
}

func (h *DataHandler) export(c *gin.Context) {
	snap, err := h.mgr.Export(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, snap)
}

func (h *DataHandler) importSnapshot(c *gin.Context) {
	var snap model.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	report := h.mgr.Import(c.Request.Context(), snap)
	status := http.StatusOK
	if !report.Success {
		status = http.StatusMultiStatus
	}
	response.WriteData(c, status, report)
}

// backup exports the current state and writes it to the fixed backup path.
func (h *DataHandler) backup(c *gin.Context) {
	snap, err := h.mgr.Export(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if err := h.files.Save(snap); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{
		"teams":   len(snap.Teams),
		"players": len(snap.Players),
		"matches": len(snap.Matches),
	})
}

type reconcileResponse struct {
	Replaced bool     `json:"replaced"`
	Success  bool     `json:"success"`
	Errors   []string `json:"errors"`
}

// reconcile runs the startup reconciliation on demand. With a JSON snapshot
// body it reconciles against that; with an empty body it uses the backup file.
func (h *DataHandler) reconcile(c *gin.Context) {
	var (
		replaced bool
		report   snapshot.Report
		err      error
	)
	if c.Request.ContentLength > 0 {
		var snap model.Snapshot
		if bindErr := c.ShouldBindJSON(&snap); bindErr != nil {
			response.WriteError(c, service.ErrInvalidInput)
			return
		}
		replaced, report, err = h.reconciler.RunWith(c.Request.Context(), snap)
	} else {
		replaced, report, err = h.reconciler.Run(c.Request.Context())
	}
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, reconcileResponse{
		Replaced: replaced,
		Success:  report.Success,
		Errors:   report.Errors,
	})
}
