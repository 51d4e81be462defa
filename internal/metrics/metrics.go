package metrics

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// CameraSource 采集器读取摄像头列表的来源
type CameraSource interface {
	ListCameras(ctx context.Context) ([]model.Camera, error)
	Settings(ctx context.Context, id string) (model.CameraSettings, error)
}

var (
	upDesc = prometheus.NewDesc(
		"blink_up", "Was the last camera scrape successful.", nil, nil,
	)
	cameraUpDesc = prometheus.NewDesc(
		"blink_camera_up", "Camera is online.", []string{"id", "name"}, nil,
	)
	cameraArmedDesc = prometheus.NewDesc(
		"blink_camera_armed", "Camera is armed.", []string{"id"}, nil,
	)
	cameraCountDesc = prometheus.NewDesc(
		"blink_cameras_total", "Total cameras grouped by status.", []string{"status"}, nil,
	)
)

type CameraCollector struct {
	Source  CameraSource
	Timeout time.Duration
	mu      sync.Mutex
}

func (c *CameraCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- cameraUpDesc
	ch <- cameraArmedDesc
	ch <- cameraCountDesc
}

func (c *CameraCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	timeout := c.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cams, err := c.Source.ListCameras(ctx)
	if err != nil {
		log.WithError(err).Error("Error scraping cameras")
		ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, 0)
		return
	}

	counts := make(map[string]float64)
	for _, cam := range cams {
		up := 0.0
		if cam.Status == model.StatusOnline {
			up = 1.0
		}
		ch <- prometheus.MustNewConstMetric(cameraUpDesc, prometheus.GaugeValue, up, cam.ID, cam.Name)

		if st, err := c.Source.Settings(ctx, cam.ID); err == nil {
			armed := 0.0
			if st.Armed {
				armed = 1.0
			}
			ch <- prometheus.MustNewConstMetric(cameraArmedDesc, prometheus.GaugeValue, armed, cam.ID)
		}

		status := cam.Status
		if status == "" {
			status = "unknown"
		}
		counts[status]++
	}
	for status, n := range counts {
		ch <- prometheus.MustNewConstMetric(cameraCountDesc, prometheus.GaugeValue, n, status)
	}
	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, 1)
}

// Metrics /metrics 使用的 registry 和请求计数器
type Metrics struct {
	Registry *prometheus.Registry
	Requests *prometheus.CounterVec
}

func New(source CameraSource) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(&CameraCollector{Source: source})

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blink_http_requests_total",
		Help: "HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "code"})
	reg.MustRegister(requests)

	return &Metrics{Registry: reg, Requests: requests}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		ErrorLog: log.StandardLogger(),
	})
}
