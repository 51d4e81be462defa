package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/handler"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/model"
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/service"
	"github.com/gmossy/AI-Enabled-blink-camera-app/pkg/util"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := handler.NewRouter(handler.Options{Store: service.NewCameraService()})
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCamerasList_Table(t *testing.T) {
	url := newTestServer(t)

	out, err := runCLI(t, "cameras", "list", "--server", url, "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "LAST ACTIVITY")
	assert.Contains(t, out, "front-door")
	assert.Contains(t, out, "Back Yard")
}

func TestCamerasList_JSON(t *testing.T) {
	url := newTestServer(t)

	out, err := runCLI(t, "cameras", "list", "--server", url, "--json")
	require.NoError(t, err)

	var cams []model.Camera
	require.NoError(t, json.Unmarshal([]byte(out), &cams))
	assert.Len(t, cams, 2)
}

func TestCamerasGet_NotFound(t *testing.T) {
	url := newTestServer(t)

	_, err := runCLI(t, "cameras", "get", "garage", "--server", url, "--json=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Camera not found")
}

func TestCamerasControlAndEvents(t *testing.T) {
	url := newTestServer(t)

	out, err := runCLI(t, "cameras", "arm", "front-door", "--server", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Camera front-door armed")

	out, err = runCLI(t, "cameras", "motion", "back-yard", "--enabled=false", "--server", url)
	require.NoError(t, err)
	assert.Contains(t, out, "set to false")

	out, err = runCLI(t, "events", "--server", url, "--json")
	require.NoError(t, err)
	var events []model.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 2)
	assert.Equal(t, model.EventMotion, events[0].Type)
	assert.False(t, events[0].Enabled)

	out, err = runCLI(t, "cameras", "get", "front-door", "--server", url, "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "ARMED")
	assert.Contains(t, out, "true")
}

func TestEvents_Empty(t *testing.T) {
	url := newTestServer(t)

	out, err := runCLI(t, "events", "--server", url, "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "No events.")
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, renderTable(nil, nil))

	out := renderTable([]string{"A", "B"}, [][]string{{"1"}, {"2", "3"}})
	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "3")
}

func TestDefaultServerURL_FollowsPort(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PORT", "6123")
	require.NoError(t, util.InitConfig(""))

	assert.Equal(t, "http://localhost:6123", defaultServerURL())
}

func TestCamerasList_DefaultServerFromPort(t *testing.T) {
	srvURL := newTestServer(t)
	u, err := url.Parse(srvURL)
	require.NoError(t, err)

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PORT", u.Port())
	flag := rootCmd.PersistentFlags().Lookup("server")
	require.NotNil(t, flag)
	flag.Changed = false

	out, err := runCLI(t, "cameras", "list", "--json=false")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:"+u.Port(), serverURL)
	assert.Contains(t, out, "front-door")
}
