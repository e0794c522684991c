package images

import (
	"context"
	"strings"
	"sync"
	"time"

	appstore "github.com/tharindu-dev/portfolio-backend/internal/store"
)

type memObject struct {
	data        []byte
	contentType string
	created     time.Time
}

// MemoryStore keeps objects in a map. Backs the memory driver and
// tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]memObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memObject)}
}

// Put seeds an object directly, bypassing Upload's URL signing.
func (m *MemoryStore) Put(path string, data []byte, contentType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = memObject{data: data, contentType: contentType, created: time.Now()}
}

// PutAt seeds an object with an explicit creation time.
func (m *MemoryStore) PutAt(path string, data []byte, contentType string, created time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = memObject{data: data, contentType: contentType, created: created}
}

func (m *MemoryStore) Download(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[path]
	if !ok {
		return nil, appstore.ErrNotFound
	}
	out := make([]byte, len(obj.data))
	copy(out, obj.data)
	return out, nil
}

func (m *MemoryStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.objects[path] = memObject{data: stored, contentType: contentType, created: time.Now()}
	return "memory://" + path, nil
}

func (m *MemoryStore) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.objects[path]; !ok {
		return appstore.ErrNotFound
	}
	delete(m.objects, path)
	return nil
}

func (m *MemoryStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []ObjectInfo
	for path, obj := range m.objects {
		if strings.HasPrefix(path, prefix) {
			out = append(out, ObjectInfo{Path: path, Created: obj.created})
		}
	}
	return out, nil
}
