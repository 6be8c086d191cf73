package repository

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func NewConfigRepository(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_url", "http://localhost:8000")
	v.SetDefault("poll_interval", 5*time.Second)
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("retry_count", 3)
	v.SetDefault("retry_interval", time.Second)

	v.SetEnvPrefix("safelink")
	v.AutomaticEnv()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 設定ファイルは任意。なければ環境変数とデフォルト値で動く
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config error: %w", err)
			}
		}
	}

	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config error: %w", err)
	}
	valid := validator.New()
	if err = valid.Struct(c); err != nil {
		return nil, fmt.Errorf("validate config error: %w", err)
	}

	return &c, nil
}

type Config struct {
	APIURL         string        `mapstructure:"api_url" validate:"required,url"`
	PollInterval   time.Duration `mapstructure:"poll_interval" validate:"required,min=1s"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required"`
	RetryCount     uint          `mapstructure:"retry_count" validate:"min=1"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
}
