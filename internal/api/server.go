// Package api exposes the timeline engine over HTTP.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reelkit/reelkit/internal/chat"
	"github.com/reelkit/reelkit/internal/media"
	"github.com/reelkit/reelkit/internal/overlay"
	"github.com/reelkit/reelkit/internal/project"
	"github.com/reelkit/reelkit/internal/render"
	"github.com/reelkit/reelkit/internal/styler"
)

// Server wires the stores and collaborator clients behind the routes.
type Server struct {
	store  *project.Store
	chat   *chat.Store
	render *render.Client
	log    zerolog.Logger
}

// New creates an API server around the given stores.
func New(store *project.Store, chatStore *chat.Store, renderClient *render.Client, log zerolog.Logger) *Server {
	return &Server{store: store, chat: chatStore, render: renderClient, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/overlays", s.listOverlays)
		api.POST("/overlays", s.addOverlay)
		api.POST("/overlays/from-asset", s.addOverlayFromAsset)
		api.PUT("/overlays/:id", s.updateOverlay)
		api.DELETE("/overlays/:id", s.deleteOverlay)
		api.POST("/overlays/:id/split", s.splitOverlay)
		api.POST("/overlays/:id/duplicate", s.duplicateOverlay)
		api.GET("/overlays/:id/style", s.resolveStyle)

		api.DELETE("/rows/:row", s.deleteRow)

		api.GET("/duration", s.duration)
		api.GET("/snapshot", s.exportSnapshot)
		api.POST("/snapshot", s.importSnapshot)

		api.POST("/render", s.dispatchRender)
		api.GET("/render/:jobId", s.renderStatus)
		api.GET("/render/:jobId/share", s.renderShareAsset)

		api.GET("/chat/:entityType/:entityId/messages", s.listMessages)
		api.POST("/chat/:entityType/:entityId/messages", s.appendMessage)
		api.POST("/chat/:entityType/:entityId/messages/:correlationId/confirm", s.confirmMessage)
		api.DELETE("/chat/:entityType/:entityId/messages/:correlationId", s.rollbackMessage)
	}
	return r
}

// requestID tags every response, honoring an id the client already set.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) snapshot() render.Snapshot {
	settings := s.store.Settings()
	return render.Snapshot{
		Overlays:         s.store.Overlays(),
		DurationInFrames: s.store.Duration(),
		FPS:              settings.FPS,
		Width:            settings.Width,
		Height:           settings.Height,
	}
}

func (s *Server) listOverlays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"overlays":         s.store.Overlays(),
		"durationInFrames": s.store.Duration(),
	})
}

func (s *Server) addOverlay(c *gin.Context) {
	var o overlay.Overlay
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid overlay: " + err.Error()})
		return
	}
	if !o.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown overlay type: " + string(o.Type)})
		return
	}
	if o.DurationInFrames <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "durationInFrames must be positive"})
		return
	}

	placed := s.store.Add(o)
	s.log.Debug().Int("id", placed.ID).Str("type", string(placed.Type)).
		Int("row", placed.Row).Int("from", placed.From).Msg("overlay added")
	c.JSON(http.StatusCreated, placed)
}

type fromAssetRequest struct {
	Asset            media.Asset  `json:"asset"`
	Kind             overlay.Kind `json:"kind"`
	DurationInFrames int          `json:"durationInFrames"`
}

func (s *Server) addOverlayFromAsset(c *gin.Context) {
	var req fromAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	seed, err := media.OverlayFromAsset(req.Asset, req.Kind, req.DurationInFrames)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s.store.Add(seed))
}

func (s *Server) updateOverlay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid overlay id"})
		return
	}

	var o overlay.Overlay
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid overlay: " + err.Error()})
		return
	}
	o.ID = id

	if !s.store.Update(o) {
		c.JSON(http.StatusNotFound, gin.H{"error": "overlay not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) deleteOverlay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid overlay id"})
		return
	}
	if !s.store.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "overlay not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteRow(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row"})
		return
	}
	removed := s.store.RemoveRow(row)
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

type splitRequest struct {
	AtFrame int `json:"atFrame"`
}

func (s *Server) splitOverlay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid overlay id"})
		return
	}

	var req splitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	first, second, ok := s.store.Split(id, req.AtFrame)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "split point outside overlay bounds"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"first": first, "second": second})
}

func (s *Server) duplicateOverlay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid overlay id"})
		return
	}

	dup, ok := s.store.Duplicate(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "overlay not found"})
		return
	}
	c.JSON(http.StatusCreated, dup)
}

func (s *Server) resolveStyle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid overlay id"})
		return
	}
	frame, err := strconv.Atoi(c.DefaultQuery("frame", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frame"})
		return
	}

	o, found := s.store.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "overlay not found"})
		return
	}

	// The query frame is global; resolution works in overlay-local
	// frames, clamped to the overlay's own range so out-of-range queries
	// resolve as the nearest boundary frame.
	local := frame - o.From
	if local < 0 {
		local = 0
	}
	if local >= o.DurationInFrames {
		local = o.DurationInFrames - 1
	}
	c.JSON(http.StatusOK, styler.Resolve(o, local))
}

func (s *Server) duration(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"durationInFrames": s.store.Duration()})
}

func (s *Server) exportSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Server) importSnapshot(c *gin.Context) {
	var snap render.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot: " + err.Error()})
		return
	}
	for _, o := range snap.Overlays {
		if !o.Type.Valid() || o.DurationInFrames <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "snapshot contains an invalid overlay"})
			return
		}
	}
	s.store.Load(snap.Overlays)
	c.JSON(http.StatusOK, gin.H{"overlays": len(snap.Overlays)})
}

func (s *Server) dispatchRender(c *gin.Context) {
	var opts render.Options
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid options: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	jobID, err := s.render.Dispatch(ctx, s.snapshot(), opts)
	if err != nil {
		s.log.Error().Err(err).Msg("render dispatch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "render service unavailable"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"jobId": jobID})
}

func (s *Server) renderStatus(c *gin.Context) {
	job, err := s.render.JobStatus(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "render service unavailable"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) renderShareAsset(c *gin.Context) {
	job, err := s.render.JobStatus(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "render service unavailable"})
		return
	}
	if job.Status != render.StatusDone || job.URL == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "render is not finished"})
		return
	}

	asset, _, err := media.ShareQR(job.URL, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share asset generation failed"})
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (s *Server) listMessages(c *gin.Context) {
	msgs := s.chat.Messages(c.Param("entityType"), c.Param("entityId"))
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

type messageRequest struct {
	Content string `json:"content"`
}

func (s *Server) appendMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message content required"})
		return
	}
	msg := s.chat.AppendOptimistic(c.Param("entityType"), c.Param("entityId"), req.Content)
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) confirmMessage(c *gin.Context) {
	if !s.chat.Confirm(c.Param("entityType"), c.Param("entityId"), c.Param("correlationId")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "pending message not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) rollbackMessage(c *gin.Context) {
	if !s.chat.Rollback(c.Param("entityType"), c.Param("entityId"), c.Param("correlationId")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "pending message not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
