// Package history keeps the recent search queries, most recent first.
// The list lives in memory only; it does not survive a restart.
package history

import (
	"strings"
	"sync"
)

const maxEntries = 10

type Store struct {
	mu      sync.Mutex
	queries []string // oldest first
}

func NewStore() *Store {
	return &Store{}
}

// Add records a query. Blank queries are ignored; a repeated query
// moves to the front; the oldest entry falls off past maxEntries.
func (s *Store) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(query)
	s.queries = append(s.queries, query)
	if len(s.queries) > maxEntries {
		s.queries = s.queries[len(s.queries)-maxEntries:]
	}
}

func (s *Store) Remove(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(query)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = nil
}

// List returns the queries newest first.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.queries))
	for i := len(s.queries) - 1; i >= 0; i-- {
		out = append(out, s.queries[i])
	}
	return out
}

func (s *Store) removeLocked(query string) {
	for i, q := range s.queries {
		if q == query {
			s.queries = append(s.queries[:i], s.queries[i+1:]...)
			return
		}
	}
}
