package tokenstore

import "sync"

var _ Store = (*Memory)(nil)

// Memory is a process-local Store. Tokens do not survive a restart, so
// every run starts anonymous.
type Memory struct {
	mu   sync.Mutex
	pair Pair
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get implements Store.
func (m *Memory) Get() (Pair, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pair, m.pair.AccessToken != ""
}

// Set implements Store.
func (m *Memory) Set(pair Pair) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pair = pair

	return nil
}

// Clear implements Store.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pair = Pair{}

	return nil
}
