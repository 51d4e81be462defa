package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/model"
	"github.com/go-resty/resty/v2"
)

var ErrNotFound = errors.New("not found")

// APIError 服务端失败时返回的 {"error": "..."}
type APIError struct {
	Message string `json:"error"`
}

type Client struct {
	HTTP *resty.Client
}

func New(baseURL string) *Client {
	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetHeader("Accept", "application/json")
	r.SetTimeout(10 * time.Second)
	return &Client{HTTP: r}
}

func (c *Client) ListCameras(ctx context.Context) ([]model.Camera, error) {
	var cameras []model.Camera
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetResult(&cameras).
		SetError(&APIError{}).
		Get("/api/cameras")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return cameras, nil
}

func (c *Client) GetCamera(ctx context.Context, id string) (model.Camera, error) {
	var camera model.Camera
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetResult(&camera).
		SetError(&APIError{}).
		Get("/api/cameras/" + url.PathEscape(id))
	if err != nil {
		return model.Camera{}, err
	}
	if resp.IsError() {
		return model.Camera{}, responseError(resp)
	}
	return camera, nil
}

func (c *Client) GetSettings(ctx context.Context, id string) (model.CameraSettings, error) {
	var settings model.CameraSettings
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetResult(&settings).
		SetError(&APIError{}).
		Get("/api/cameras/" + url.PathEscape(id) + "/settings")
	if err != nil {
		return model.CameraSettings{}, err
	}
	if resp.IsError() {
		return model.CameraSettings{}, responseError(resp)
	}
	return settings, nil
}

// SetArmed 根据 armed 调用 /arm 或 /disarm
func (c *Client) SetArmed(ctx context.Context, id string, armed bool) error {
	action := "disarm"
	if armed {
		action = "arm"
	}
	return c.post(ctx, "/api/cameras/"+url.PathEscape(id)+"/"+action, nil)
}

func (c *Client) SetMotionDetection(ctx context.Context, id string, enabled bool) error {
	return c.post(ctx, "/api/cameras/"+url.PathEscape(id)+"/motion", model.ToggleRequest{Enabled: &enabled})
}

func (c *Client) SetNotifications(ctx context.Context, id string, enabled bool) error {
	return c.post(ctx, "/api/cameras/"+url.PathEscape(id)+"/notifications", model.ToggleRequest{Enabled: &enabled})
}

func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetResult(&events).
		SetError(&APIError{}).
		Get("/api/events")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return events, nil
}

func (c *Client) Logs(ctx context.Context) ([]string, error) {
	var body struct {
		Logs []string `json:"logs"`
	}
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetResult(&body).
		SetError(&APIError{}).
		Get("/api/logs")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return body.Logs, nil
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	req := c.HTTP.R().
		SetContext(ctx).
		SetError(&APIError{})
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return responseError(resp)
	}
	return nil
}

func responseError(resp *resty.Response) error {
	msg := resp.Status()
	if apiErr, ok := resp.Error().(*APIError); ok && apiErr.Message != "" {
		msg = apiErr.Message
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}
	return fmt.Errorf("request failed (%d): %s", resp.StatusCode(), msg)
}
