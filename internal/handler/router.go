package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/metrics"
)

type Options struct {
	Store       CameraStore
	Logs        LogSource
	Metrics     *metrics.Metrics
	CORSOrigins []string
}

// NewRouter 组装中间件、API 路由和页面路由
func NewRouter(opts Options) (*gin.Engine, error) {
	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	// 计数放在 Recovery 外层，panic 转成的 500 也要计入
	if opts.Metrics != nil {
		router.Use(RequestMetrics(opts.Metrics))
	}
	router.Use(Recovery())
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	router.Use(CORS(opts.CORSOrigins))
	router.SetHTMLTemplate(tmpl)

	NewCameraHandler(opts.Store, opts.Logs).RegisterRoutes(router)
	NewWebHandler(opts.Store).RegisterRoutes(router)
	return router, nil
}
