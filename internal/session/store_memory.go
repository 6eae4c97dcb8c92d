package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cloudprep/ccpquiz/internal/quiz"
)

// memoryStore keeps snapshots in a process-local map. Snapshots are stored as
// serialized bytes so callers never alias the stored session.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: map[string][]byte{}}
}

func (m *memoryStore) Save(_ context.Context, id string, s *quiz.Session) error {
	buf, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = buf
	return nil
}

func (m *memoryStore) Load(_ context.Context, id string) (*quiz.Session, error) {
	m.mu.RLock()
	buf, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var s quiz.Session
	if err := json.Unmarshal(buf, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
