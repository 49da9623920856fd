package resource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/surveyRunner/internal/config"
)

const questions = `[{"num": 0, "question": "Q", "answer": null}]`

func TestMemoryReader(t *testing.T) {
	r := NewMemoryReader()
	r.Put("a.json", []byte(questions))

	data, err := r.ReadResource(context.Background(), "a.json")
	require.NoError(t, err)
	assert.Equal(t, questions, string(data))

	// изменение полученных данных не портит ресурс
	data[0] = '{'
	again, err := r.ReadResource(context.Background(), "a.json")
	require.NoError(t, err)
	assert.Equal(t, questions, string(again))

	r.Delete("a.json")
	_, err = r.ReadResource(context.Background(), "a.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryReader_Canceled(t *testing.T) {
	r := NewMemoryReader()
	r.Put("a.json", []byte(questions))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ReadResource(ctx, "a.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileReader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.json"), []byte(questions), 0o644))

	r := NewFileReader(dir)

	data, err := r.ReadResource(context.Background(), "sample.json")
	require.NoError(t, err)
	assert.Equal(t, questions, string(data))

	_, err = r.ReadResource(context.Background(), "nonexistent.json")
	assert.ErrorIs(t, err, ErrNotFound)

	abs := NewFileReader("")
	data, err = abs.ReadResource(context.Background(), filepath.Join(dir, "sample.json"))
	require.NoError(t, err)
	assert.Equal(t, questions, string(data))
}

func TestFileReader_Directory(t *testing.T) {
	dir := t.TempDir()
	r := NewFileReader("")

	_, err := r.ReadResource(context.Background(), dir)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestHTTPReader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/surveys/sample.json":
			_, _ = w.Write([]byte(questions))
		case "/surveys/broken.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	r := NewHTTPReader(srv.URL+"/surveys/", time.Second)

	data, err := r.ReadResource(context.Background(), "sample.json")
	require.NoError(t, err)
	assert.Equal(t, questions, string(data))

	_, err = r.ReadResource(context.Background(), "nonexistent.json")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.ReadResource(context.Background(), "broken.json")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "500")
}

type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}

	*(dest[0].(*[]byte)) = r.data

	return nil
}

type fakePool struct {
	files map[string][]byte
	err   error
	query string
}

func (p *fakePool) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	p.query = sql

	if p.err != nil {
		return fakeRow{err: p.err}
	}

	data, ok := p.files[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}

	return fakeRow{data: data}
}

func TestPostgresReader(t *testing.T) {
	pool := &fakePool{files: map[string][]byte{"sample": []byte(questions)}}
	r := NewPostgresReader(pool)

	data, err := r.ReadResource(context.Background(), "sample")
	require.NoError(t, err)
	assert.Equal(t, questions, string(data))
	assert.Contains(t, pool.query, "FROM surveys")

	_, err = r.ReadResource(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)

	connErr := errors.New("connection refused")
	r = NewPostgresReader(&fakePool{err: connErr})
	_, err = r.ReadResource(context.Background(), "sample")
	assert.ErrorIs(t, err, connErr)
	assert.False(t, errors.Is(err, ErrNotFound))
}

type fakeRedis struct {
	values map[string]string
	keys   []string
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.keys = append(f.keys, key)

	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func TestRedisReader(t *testing.T) {
	rdb := &fakeRedis{values: map[string]string{"survey:sample": questions}}
	r := NewRedisReader(rdb, "survey:")

	data, err := r.ReadResource(context.Background(), "sample")
	require.NoError(t, err)
	assert.Equal(t, questions, string(data))

	_, err = r.ReadResource(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"survey:sample", "survey:nonexistent"}, rdb.keys)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	r, closeReader, err := New(ctx, &config.Config{Source: "file", Dir: t.TempDir()})
	require.NoError(t, err)
	defer closeReader()
	assert.IsType(t, &FileReader{}, r)

	r, closeReader, err = New(ctx, &config.Config{Source: "http", BaseURL: "http://localhost", HTTPTimeout: time.Second})
	require.NoError(t, err)
	defer closeReader()
	assert.IsType(t, &HTTPReader{}, r)

	_, _, err = New(ctx, &config.Config{Source: "http"})
	assert.Error(t, err)

	_, _, err = New(ctx, &config.Config{Source: "redis", RedisURL: "not a url"})
	assert.Error(t, err)

	_, _, err = New(ctx, &config.Config{Source: "ftp"})
	assert.Error(t, err)
}
