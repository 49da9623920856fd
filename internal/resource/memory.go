package resource

import (
	"context"
	"fmt"
	"sync"
)

// MemoryReader хранит ресурсы в памяти.
type MemoryReader struct {
	resources map[string][]byte
	mu        sync.RWMutex
}

// NewMemoryReader создаёт новый MemoryReader.
func NewMemoryReader() *MemoryReader {
	return &MemoryReader{
		resources: make(map[string][]byte),
	}
}

// Put сохраняет содержимое ресурса name.
func (m *MemoryReader) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resources[name] = append([]byte(nil), data...)
}

// Delete удаляет ресурс name.
func (m *MemoryReader) Delete(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.resources, name)
}

// ReadResource возвращает копию содержимого ресурса name.
func (m *MemoryReader) ReadResource(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.resources[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	return append([]byte(nil), data...), nil
}
