package config

import (
	"os"
	"time"

	"github.com/shouni/go-word-fetch/pkg/client"
	"github.com/shouni/go-word-fetch/pkg/words"
)

// 環境変数名
const (
	EnvURL       = "WORDFETCH_URL"
	EnvFormat    = "WORDFETCH_FORMAT"
	EnvTimeout   = "WORDFETCH_TIMEOUT"
	EnvUserAgent = "WORDFETCH_USER_AGENT"
)

// Config はCLIフラグのデフォルト値として使う設定を保持します。
type Config struct {
	URL       string
	Format    words.Format
	Timeout   time.Duration
	UserAgent string
}

// Load loads configuration from environment variables with defaults
func Load() Config {
	format, err := words.ParseFormat(GetStringEnv(EnvFormat, string(words.FormatText)))
	if err != nil {
		format = words.FormatText
	}

	return Config{
		URL:       GetStringEnv(EnvURL, words.DefaultURL),
		Format:    format,
		Timeout:   GetDurationEnv(EnvTimeout, client.DefaultHTTPTimeout),
		UserAgent: GetStringEnv(EnvUserAgent, client.DefaultUserAgent),
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}
