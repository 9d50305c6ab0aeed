package store

import (
	"context"
	"sync"
)

// MockKV is an in-memory KeyValue for tests that can inject failures and
// counts the calls it receives.
type MockKV struct {
	MemoryKV

	GetError   error
	SetError   error
	ClearError error

	mu       sync.Mutex
	setCalls map[string]int
}

// NewMockKV returns an empty MockKV.
func NewMockKV() *MockKV {
	return &MockKV{MemoryKV: MemoryKV{values: make(map[string]string)}, setCalls: make(map[string]int)}
}

func (m *MockKV) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetError != nil {
		return "", false, m.GetError
	}
	return m.MemoryKV.Get(ctx, key)
}

func (m *MockKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	if m.setCalls == nil {
		m.setCalls = make(map[string]int)
	}
	m.setCalls[key]++
	m.mu.Unlock()

	if m.SetError != nil {
		return m.SetError
	}
	return m.MemoryKV.Set(ctx, key, value)
}

func (m *MockKV) Clear(ctx context.Context) error {
	if m.ClearError != nil {
		return m.ClearError
	}
	return m.MemoryKV.Clear(ctx)
}

// SetCalls returns how many times Set was called for key.
func (m *MockKV) SetCalls(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setCalls[key]
}
