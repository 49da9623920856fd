package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
)

// rowQuerier — часть pgxpool.Pool, нужная PostgresReader.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// PostgresReader читает файлы с вопросами из таблицы surveys.
type PostgresReader struct {
	pool rowQuerier
}

// NewPostgresReader создаёт PostgresReader поверх пула соединений.
func NewPostgresReader(pool rowQuerier) *PostgresReader {
	return &PostgresReader{pool: pool}
}

// ReadResource возвращает файл опроса с именем name.
func (r *PostgresReader) ReadResource(ctx context.Context, name string) ([]byte, error) {
	query := `
	SELECT file FROM surveys WHERE name = $1
	`

	var file []byte
	err := r.pool.QueryRow(ctx, query, name).Scan(&file)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("survey %s: %w", name, ErrNotFound)
		}
		return nil, err
	}

	return file, nil
}
