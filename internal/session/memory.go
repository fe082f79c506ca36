package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. A restart drops every active
// session; clients are not notified.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{recs: make(map[string]Record)}
	go s.cleanupStaleEntries()
	return s
}

func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.Token] = rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[token]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, token)
	return nil
}

// Expired records are also dropped lazily on Check; the sweep keeps
// abandoned sessions from accumulating.
func (s *MemoryStore) cleanupStaleEntries() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for token, rec := range s.recs {
			if now.After(rec.ExpiresAt) {
				delete(s.recs, token)
			}
		}
		s.mu.Unlock()
	}
}
