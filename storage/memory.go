package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps the blob in process memory. Useful for tests and
// throwaway sessions.
type MemoryBackend struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

// compile-time assertion
var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend constructs an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.set {
		return nil, ErrNotExist
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *MemoryBackend) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = make([]byte, len(data))
	copy(b.data, data)
	b.set = true
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	b.set = false
	return nil
}

func (b *MemoryBackend) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.set, nil
}
