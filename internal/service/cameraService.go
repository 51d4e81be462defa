package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/model"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// MaxEvents 内存中保留的事件条数
const MaxEvents = 50

var ErrCameraNotFound = errors.New("camera not found")

// fixtureCameras Blink 接入之前使用的固定摄像头数据
var fixtureCameras = []model.Camera{
	{ID: "front-door", Name: "Front Door", Status: model.StatusOnline},
	{ID: "back-yard", Name: "Back Yard", Status: model.StatusOnline},
}

// CameraService 提供摄像头列表以及内存中的设置和事件
type CameraService struct {
	mu       sync.RWMutex
	cameras  []model.Camera
	settings map[string]*model.CameraSettings
	events   []model.Event
	now      func() time.Time
}

// NewCameraService 使用固定数据创建服务
func NewCameraService() *CameraService {
	return newCameraService(fixtureCameras, time.Now)
}

func newCameraService(cameras []model.Camera, now func() time.Time) *CameraService {
	s := &CameraService{
		cameras:  make([]model.Camera, len(cameras)),
		settings: make(map[string]*model.CameraSettings, len(cameras)),
		now:      now,
	}
	copy(s.cameras, cameras)
	for _, c := range cameras {
		s.settings[c.ID] = &model.CameraSettings{
			ID:                   c.ID,
			MotionEnabled:        true,
			NotificationsEnabled: true,
		}
	}
	return s
}

// timestamp lastActivity 为请求时刻（毫秒精度，UTC）
func (s *CameraService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// ListCameras 获取所有摄像头
func (s *CameraService) ListCameras(ctx context.Context) ([]model.Camera, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ts := s.timestamp()
	list := make([]model.Camera, 0, len(s.cameras))
	for _, c := range s.cameras {
		c.LastActivity = ts
		list = append(list, c)
	}
	return list, nil
}

// GetCamera 按 id 获取摄像头
func (s *CameraService) GetCamera(ctx context.Context, id string) (model.Camera, error) {
	if err := ctx.Err(); err != nil {
		return model.Camera{}, err
	}
	for _, c := range s.cameras {
		if c.ID == id {
			c.LastActivity = s.timestamp()
			return c, nil
		}
	}
	return model.Camera{}, ErrCameraNotFound
}

// Settings 获取摄像头设置
func (s *CameraService) Settings(ctx context.Context, id string) (model.CameraSettings, error) {
	if err := ctx.Err(); err != nil {
		return model.CameraSettings{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.settings[id]
	if !ok {
		return model.CameraSettings{}, ErrCameraNotFound
	}
	return *st, nil
}

// SetArmed 布防 / 撤防
func (s *CameraService) SetArmed(ctx context.Context, id string, armed bool) error {
	eventType := model.EventDisarm
	if armed {
		eventType = model.EventArm
	}
	return s.update(ctx, id, eventType, armed, func(st *model.CameraSettings) {
		st.Armed = armed
	})
}

// SetMotionDetection 开关移动侦测
func (s *CameraService) SetMotionDetection(ctx context.Context, id string, enabled bool) error {
	return s.update(ctx, id, model.EventMotion, enabled, func(st *model.CameraSettings) {
		st.MotionEnabled = enabled
	})
}

// SetNotifications 开关通知（关闭即 snooze）
func (s *CameraService) SetNotifications(ctx context.Context, id string, enabled bool) error {
	return s.update(ctx, id, model.EventNotifications, enabled, func(st *model.CameraSettings) {
		st.NotificationsEnabled = enabled
	})
}

func (s *CameraService) update(ctx context.Context, id, eventType string, enabled bool, apply func(*model.CameraSettings)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.settings[id]
	if !ok {
		log.WithField("camera", id).Warn("Camera not found")
		return ErrCameraNotFound
	}
	apply(st)

	ev := model.Event{
		ID:        uuid.NewString(),
		Camera:    id,
		Type:      eventType,
		Enabled:   enabled,
		Timestamp: s.timestamp(),
	}
	// 最新的在前
	s.events = append([]model.Event{ev}, s.events...)
	if len(s.events) > MaxEvents {
		s.events = s.events[:MaxEvents]
	}

	log.WithFields(log.Fields{"camera": id, "type": eventType, "enabled": enabled}).
		Infof("Camera %s %s=%t", id, eventType, enabled)
	return nil
}

// Events 获取事件列表，最新的在前
func (s *CameraService) Events(ctx context.Context) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}
