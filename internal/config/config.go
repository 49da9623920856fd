// Package config загружает настройки запуска опроса.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config содержит параметры запуска опроса.
type Config struct {
	// Источник вопросов: file, http, postgres или redis.
	Source   string `env:"SURVEY_SOURCE" envDefault:"file"`
	Resource string `env:"SURVEY_RESOURCE" envDefault:"questions.json"`

	// Каталог для источника file.
	Dir string `env:"SURVEY_DIR"`

	BaseURL     string        `env:"SURVEY_BASE_URL"`
	HTTPTimeout time.Duration `env:"SURVEY_HTTP_TIMEOUT" envDefault:"10s"`

	PostgresDSN string `env:"POSTGRES_DSN"`

	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPrefix string `env:"REDIS_PREFIX" envDefault:"survey:"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Ответ без текущего вопроса возвращает ошибку вместо молчаливого пропуска.
	StrictAnswer bool `env:"SURVEY_STRICT_ANSWER" envDefault:"false"`
}

// Load загружает конфигурацию из файла .env (если он есть), переменных окружения
// и флагов командной строки args. Флаги имеют приоритет над окружением.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	fs := pflag.NewFlagSet("surveyrunner", pflag.ContinueOnError)
	fs.StringVar(&cfg.Source, "source", cfg.Source, "source of questions: file, http, postgres, redis")
	fs.StringVarP(&cfg.Resource, "resource", "r", cfg.Resource, "name of the resource with questions")
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory with question files")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base url for http source")
	fs.DurationVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "timeout of http requests")
	fs.StringVar(&cfg.PostgresDSN, "postgres-dsn", cfg.PostgresDSN, "postgres connection string")
	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "redis connection url")
	fs.StringVar(&cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "prefix of redis keys")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.StrictAnswer, "strict", cfg.StrictAnswer, "fail on answer without current question")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Resource == "" {
		return nil, fmt.Errorf("resource name is empty")
	}

	return cfg, nil
}
