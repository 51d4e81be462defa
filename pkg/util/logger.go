package util

import (
	"fmt"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// MaxRecentLogs 保留在内存中的最近日志条数
const MaxRecentLogs = 50

var LogFile *os.File

// SetupLogger 按配置设置 logrus，并挂上最近日志的 hook
func SetupLogger() (*RecentLogHook, error) {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", viper.GetString("log.level"), err)
	}
	log.SetLevel(level)

	if logFile := viper.GetString("log.file"); logFile != "" {
		LogFile, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(LogFile)
	} else {
		log.SetOutput(os.Stdout)
	}

	switch viper.GetString("log.format") {
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&log.JSONFormatter{})
	}

	hook := NewRecentLogHook(MaxRecentLogs)
	log.AddHook(hook)
	return hook, nil
}

// CloseLogFile 关闭日志文件（如果有）
func CloseLogFile() {
	if LogFile != nil {
		_ = LogFile.Close()
		LogFile = nil
	}
}

// RecentLogHook 以环形方式保存最近的日志行，供 /api/logs 展示
type RecentLogHook struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func NewRecentLogHook(max int) *RecentLogHook {
	return &RecentLogHook{max: max}
}

func (h *RecentLogHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *RecentLogHook) Fire(entry *log.Entry) error {
	line := fmt.Sprintf("[%s] %s", entry.Time.Format("15:04:05"), entry.Message)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = append(h.lines, line)
	if len(h.lines) > h.max {
		h.lines = h.lines[len(h.lines)-h.max:]
	}
	return nil
}

// Lines 返回日志的副本，最旧的在前
func (h *RecentLogHook) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}
