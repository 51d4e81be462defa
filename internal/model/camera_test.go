package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraJSON_LastActivityKeepsMillis(t *testing.T) {
	cam := Camera{
		ID:           "front-door",
		Name:         "Front Door",
		Status:       StatusOnline,
		LastActivity: time.Date(2024, 5, 1, 12, 30, 45, 100_000_000, time.UTC),
	}

	b, err := json.Marshal(cam)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"front-door","name":"Front Door","status":"online","lastActivity":"2024-05-01T12:30:45.100Z"}`, string(b))

	var back Camera
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, cam.LastActivity.Equal(back.LastActivity))
}

func TestCameraJSON_WholeSecondAndOffset(t *testing.T) {
	loc := time.FixedZone("EDT", -4*60*60)
	cam := Camera{ID: "back-yard", LastActivity: time.Date(2024, 5, 1, 8, 0, 0, 0, loc)}

	b, err := json.Marshal(cam)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"lastActivity":"2024-05-01T12:00:00.000Z"`)
}

func TestToggleRequest_Value(t *testing.T) {
	assert.True(t, ToggleRequest{}.Value())
	off := false
	assert.False(t, ToggleRequest{Enabled: &off}.Value())
}
