package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	Records       int    `json:"records"`
	Dates         int    `json:"dates"`
	Diaries       int    `json:"diaries"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diaries := make(map[string]bool)
	for _, counts := range s.records {
		for diary := range counts {
			diaries[diary] = true
		}
	}

	return StoreState{
		Path:          s.config.Path,
		Records:       s.len(),
		Dates:         len(s.records),
		Diaries:       len(diaries),
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "flat-file store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
