package session

import (
	"log/slog"
	"sync"
	"time"
)

// Record is the server-side bookkeeping entry for one outstanding refresh
// token. Records live only inside the Store; callers get copies.
type Record struct {
	Owner     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Store tracks outstanding refresh tokens in memory. Safe for concurrent
// use. For production use Redis or a DB.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewStore() *Store {
	return &Store{records: make(map[string]Record)}
}

// Save inserts or overwrites the record for token. Overwriting an existing
// key silently replaces it.
func (s *Store) Save(token, owner string, ttl time.Duration) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[token] = Record{
		Owner:     owner,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// Verify returns the owner of token if it is known and unexpired. An
// expired record is deleted on the way out (lazy expiry).
func (s *Store) Verify(token string) (string, bool) {
	s.mu.RLock()
	rec, ok := s.records[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(rec.ExpiresAt) {
		// lazy delete
		s.mu.Lock()
		if cur, ok := s.records[token]; ok && time.Now().After(cur.ExpiresAt) {
			delete(s.records, token)
		}
		s.mu.Unlock()
		return "", false
	}
	return rec.Owner, true
}

// Revoke removes the record for token. Revoking an absent or already
// revoked token is a no-op.
func (s *Store) Revoke(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
}

// RevokeAll removes every record belonging to owner.
func (s *Store) RevokeAll(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, rec := range s.records {
		if rec.Owner == owner {
			delete(s.records, token)
		}
	}
}

// SweepExpired removes every expired record and returns how many were
// removed.
func (s *Store) SweepExpired() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, rec := range s.records {
		if now.After(rec.ExpiresAt) {
			delete(s.records, token)
			n++
		}
	}
	return n
}

// Len reports the number of stored records, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Janitor sweeps expired records every interval. Run it in its own
// goroutine; it never returns.
func (s *Store) Janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if n := s.SweepExpired(); n > 0 {
			slog.Info("session sweep", slog.Int("removed", n), slog.Int("remaining", s.Len()))
		}
	}
}
