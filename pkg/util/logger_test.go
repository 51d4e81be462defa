package util

import (
	"fmt"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentLogHook_KeepsNewest(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	hook := NewRecentLogHook(3)
	logger.AddHook(hook)

	for i := 1; i <= 5; i++ {
		logger.Infof("message %d", i)
	}

	lines := hook.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "message 3")
	assert.Contains(t, lines[2], "message 5")
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\] message 5$`, lines[2])
}

func TestRecentLogHook_LinesIsCopy(t *testing.T) {
	hook := NewRecentLogHook(MaxRecentLogs)
	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)

	for i := 0; i < MaxRecentLogs+5; i++ {
		logger.Warn(fmt.Sprint("line ", i))
	}
	lines := hook.Lines()
	assert.Len(t, lines, MaxRecentLogs)

	lines[0] = "mutated"
	assert.NotEqual(t, "mutated", hook.Lines()[0])
}
