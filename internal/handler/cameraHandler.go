package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/model"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/service"
	log "github.com/sirupsen/logrus"
)

// CameraStore 摄像头数据来源，目前由 service.CameraService 提供固定数据
type CameraStore interface {
	ListCameras(ctx context.Context) ([]model.Camera, error)
	GetCamera(ctx context.Context, id string) (model.Camera, error)
	Settings(ctx context.Context, id string) (model.CameraSettings, error)
	SetArmed(ctx context.Context, id string, armed bool) error
	SetMotionDetection(ctx context.Context, id string, enabled bool) error
	SetNotifications(ctx context.Context, id string, enabled bool) error
	Events(ctx context.Context) ([]model.Event, error)
}

// LogSource 最近日志
type LogSource interface {
	Lines() []string
}

type CameraHandler struct {
	store CameraStore
	logs  LogSource
}

func NewCameraHandler(store CameraStore, logs LogSource) *CameraHandler {
	return &CameraHandler{store: store, logs: logs}
}

func (h *CameraHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	api.GET("/cameras", h.GetCameras)
	api.GET("/cameras/:id", h.GetCamera)
	api.GET("/cameras/:id/settings", h.GetSettings)
	api.POST("/cameras/:id/arm", h.Arm)
	api.POST("/cameras/:id/disarm", h.Disarm)
	api.POST("/cameras/:id/motion", h.ToggleMotion)
	api.POST("/cameras/:id/notifications", h.ToggleNotifications)
	api.GET("/events", h.GetEvents)
	api.GET("/logs", h.GetLogs)
}

func (h *CameraHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *CameraHandler) GetCameras(c *gin.Context) {
	// TODO: 接入 Blink 厂商认证后，用真实 API 客户端替换 fixture store
	cameras, err := h.store.ListCameras(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cameras)
}

func (h *CameraHandler) GetCamera(c *gin.Context) {
	camera, err := h.store.GetCamera(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, camera)
}

func (h *CameraHandler) GetSettings(c *gin.Context) {
	settings, err := h.store.Settings(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *CameraHandler) Arm(c *gin.Context) {
	h.setArmed(c, true)
}

func (h *CameraHandler) Disarm(c *gin.Context) {
	h.setArmed(c, false)
}

func (h *CameraHandler) setArmed(c *gin.Context, armed bool) {
	if err := h.store.SetArmed(c.Request.Context(), c.Param("id"), armed); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *CameraHandler) ToggleMotion(c *gin.Context) {
	enabled, ok := bindToggle(c)
	if !ok {
		return
	}
	if err := h.store.SetMotionDetection(c.Request.Context(), c.Param("id"), enabled); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "motionEnabled": enabled})
}

func (h *CameraHandler) ToggleNotifications(c *gin.Context) {
	enabled, ok := bindToggle(c)
	if !ok {
		return
	}
	if err := h.store.SetNotifications(c.Request.Context(), c.Param("id"), enabled); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "notificationsEnabled": enabled})
}

func (h *CameraHandler) GetEvents(c *gin.Context) {
	events, err := h.store.Events(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *CameraHandler) GetLogs(c *gin.Context) {
	lines := []string{}
	if h.logs != nil {
		lines = h.logs.Lines()
	}
	c.JSON(http.StatusOK, gin.H{"logs": lines})
}

// bindToggle 解析 {"enabled": bool}，空请求体视为 enabled=true
func bindToggle(c *gin.Context) (bool, bool) {
	var req model.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false, false
	}
	return req.Value(), true
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCameraNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camera not found"})
		return
	}
	log.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
