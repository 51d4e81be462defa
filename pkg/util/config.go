package util

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig 加载 .env、默认值、环境变量以及可选的配置文件
// cfgFile 为空时在 config 目录查找 default.yaml，找不到文件不算错误
func InitConfig(cfgFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("cors.origins", []string{"*"})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("log.file", "")

	envKeys := map[string]string{
		"server.port": "PORT",
		"server.mode": "GIN_MODE",
		"log.level":   "LOG_LEVEL",
		"log.format":  "LOG_FORMAT",
		"log.file":    "LOG_FILE",
	}
	for key, env := range envKeys {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("default") // 配置文件名（不带扩展名）
		viper.SetConfigType("yaml")
		viper.AddConfigPath("config")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}
