package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	require.NoError(t, InitConfig(""))

	assert.Equal(t, "5000", viper.GetString("server.port"))
	assert.Equal(t, "release", viper.GetString("server.mode"))
	assert.Equal(t, []string{"*"}, viper.GetStringSlice("cors.origins"))
	assert.Equal(t, "info", viper.GetString("log.level"))
	assert.Equal(t, "json", viper.GetString("log.format"))
}

func TestInitConfig_PortFromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "8081")

	require.NoError(t, InitConfig(""))
	assert.Equal(t, "8081", viper.GetString("server.port"))
}

func TestInitConfig_File(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "server:\n  port: \"7000\"\ncors:\n  origins:\n    - http://localhost:3000\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, InitConfig(path))
	assert.Equal(t, "7000", viper.GetString("server.port"))
	assert.Equal(t, []string{"http://localhost:3000"}, viper.GetStringSlice("cors.origins"))
	assert.Equal(t, "debug", viper.GetString("log.level"))
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	viper.Reset()

	err := InitConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	viper.Reset()
	viper.Set("log.level", "loud")

	_, err := SetupLogger()
	assert.Error(t, err)
}

func TestSetupLogger_File(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "app.log")
	viper.Set("log.level", "info")
	viper.Set("log.format", "text")
	viper.Set("log.file", path)
	t.Cleanup(func() {
		CloseLogFile()
		log.SetOutput(os.Stderr)
		log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	})

	hook, err := SetupLogger()
	require.NoError(t, err)
	log.Info("camera list served")

	lines := hook.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "] camera list served"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "camera list served")
}
