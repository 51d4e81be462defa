package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/service"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// 与浏览器 toLocaleString（en-US）一致的时间格式
const displayTimeLayout = "1/2/2006, 3:04:05 PM"

var templateFuncs = template.FuncMap{
	"localtime": func(t time.Time) string {
		return t.Local().Format(displayTimeLayout)
	},
}

// LoadTemplates 解析内嵌的页面模板
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl")
}

// WebHandler 渲染 Dashboard 与 CameraView 页面
type WebHandler struct {
	store CameraStore
}

func NewWebHandler(store CameraStore) *WebHandler {
	return &WebHandler{store: store}
}

func (h *WebHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Dashboard)
	r.GET("/camera/:id", h.CameraView)
}

func (h *WebHandler) Dashboard(c *gin.Context) {
	refresh, _ := strconv.Atoi(c.Query("refresh"))
	if refresh < 0 {
		refresh = 0
	}

	cameras, err := h.store.ListCameras(c.Request.Context())
	if err != nil {
		// 和前端一致：拉取失败时记录日志并展示空列表
		log.WithError(err).Error("Error fetching cameras")
		cameras = nil
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"Cameras": cameras,
		"Refresh": refresh,
	})
}

func (h *WebHandler) CameraView(c *gin.Context) {
	camera, err := h.store.GetCamera(c.Request.Context(), c.Param("id"))
	if err != nil {
		if !errors.Is(err, service.ErrCameraNotFound) {
			log.WithError(err).Error("Error fetching camera")
		}
		c.HTML(http.StatusNotFound, "camera.tmpl", gin.H{"Camera": nil})
		return
	}
	c.HTML(http.StatusOK, "camera.tmpl", gin.H{"Camera": camera})
}
