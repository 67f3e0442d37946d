package store

import "context"

// MemoryBackend holds the serialized list in memory. Used by tests and as
// a throwaway backend for local development.
type MemoryBackend struct {
	data []byte
	set  bool

	// SaveErr, when non-nil, is returned by every Save. Lets tests
	// exercise the quota-exceeded path.
	SaveErr error
}

// NewMemoryBackend creates an empty in-memory store backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(_ context.Context) ([]byte, bool, error) {
	if !b.set {
		return nil, false, nil
	}
	return b.data, true, nil
}

func (b *MemoryBackend) Save(_ context.Context, data []byte) error {
	if b.SaveErr != nil {
		return b.SaveErr
	}
	b.data = append([]byte(nil), data...)
	b.set = true
	return nil
}

// Seed places a raw value directly, bypassing Save's error hook.
func (b *MemoryBackend) Seed(data []byte) {
	b.data = append([]byte(nil), data...)
	b.set = true
}
