// Package resource содержит источники, из которых загружаются файлы с вопросами.
package resource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/letsssgooo/surveyRunner/internal/config"
)

// ErrNotFound возвращается, если ресурса с таким именем нет.
var ErrNotFound = errors.New("resource not found")

// Reader читает содержимое именованного ресурса целиком.
type Reader interface {
	ReadResource(ctx context.Context, name string) ([]byte, error)
}

// Source — тип источника ресурсов.
type Source string

const (
	SourceFile     Source = "file"
	SourceHTTP     Source = "http"
	SourcePostgres Source = "postgres"
	SourceRedis    Source = "redis"
)

// Таймаут подключения к хранилищам
const timeoutConnect = 5 * time.Second

// New создаёт источник ресурсов по конфигурации.
// Возвращаемая функция закрывает соединения источника.
func New(ctx context.Context, cfg *config.Config) (Reader, func(), error) {
	switch Source(cfg.Source) {
	case SourceFile:
		return NewFileReader(cfg.Dir), func() {}, nil
	case SourceHTTP:
		if cfg.BaseURL == "" {
			return nil, nil, errors.New("base url is required for http source")
		}
		return NewHTTPReader(cfg.BaseURL, cfg.HTTPTimeout), func() {}, nil
	case SourcePostgres:
		connectCtx, cancel := context.WithTimeout(ctx, timeoutConnect)
		defer cancel()

		pool, err := pgxpool.Connect(connectCtx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewPostgresReader(pool), pool.Close, nil
	case SourceRedis:
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis URL: %w", err)
		}

		rdb := redis.NewClient(opt)

		pingCtx, cancel := context.WithTimeout(ctx, timeoutConnect)
		defer cancel()

		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return NewRedisReader(rdb, cfg.RedisPrefix), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown resource source %q", cfg.Source)
	}
}
