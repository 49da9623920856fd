package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileReader читает ресурсы из файлов в каталоге dir.
type FileReader struct {
	dir string
}

// NewFileReader создаёт FileReader. Пустой dir означает текущий каталог.
func NewFileReader(dir string) *FileReader {
	return &FileReader{dir: dir}
}

// ReadResource читает файл name целиком.
func (r *FileReader) ReadResource(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if r.dir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(r.dir, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, err
	}

	return data, nil
}
