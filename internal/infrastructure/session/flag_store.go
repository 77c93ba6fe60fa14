package session

import "sync"

// FlagStore is an in-memory once-per-session flag store. Flags only ever go
// from unset to set and are lost on restart, like the popup dismissal.
type FlagStore struct {
	mu    sync.RWMutex
	flags map[string]struct{}
}

// NewFlagStore creates an empty FlagStore
func NewFlagStore() *FlagStore {
	return &FlagStore{
		flags: make(map[string]struct{}),
	}
}

// Get reports whether the flag has been set
func (s *FlagStore) Get(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.flags[key]
	return ok
}

// Set sets the flag
func (s *FlagStore) Set(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = struct{}{}
}
