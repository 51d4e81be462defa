package model

import (
	"encoding/json"
	"time"
)

// ISOMillis 与浏览器 Date.toISOString 一致，毫秒固定三位
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

type Camera struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	LastActivity time.Time `json:"lastActivity"`
}

func (c Camera) MarshalJSON() ([]byte, error) {
	type alias Camera
	return json.Marshal(struct {
		alias
		LastActivity string `json:"lastActivity"`
	}{
		alias:        alias(c),
		LastActivity: c.LastActivity.UTC().Format(ISOMillis),
	})
}

type CameraSettings struct {
	ID                   string `json:"id"`
	Armed                bool   `json:"armed"`
	MotionEnabled        bool   `json:"motionEnabled"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

const (
	EventArm           = "arm"
	EventDisarm        = "disarm"
	EventMotion        = "motion"
	EventNotifications = "notifications"
)

// Event 记录一次摄像头设置变更
type Event struct {
	ID        string    `json:"id"`
	Camera    string    `json:"camera"`
	Type      string    `json:"type"`
	Enabled   bool      `json:"enabled"`
	Timestamp time.Time `json:"timestamp"`
}

// ToggleRequest motion / notifications 开关的请求体，enabled 缺省为 true
type ToggleRequest struct {
	Enabled *bool `json:"enabled"`
}

func (r ToggleRequest) Value() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}
