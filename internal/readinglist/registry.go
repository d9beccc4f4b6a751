package readinglist

import (
	"errors"
	"sync"
)

// Registry hands out one FileStore per user, loading it on first use.
type Registry struct {
	mu     sync.Mutex
	dir    string
	stores map[string]*FileStore
}

func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:    dir,
		stores: make(map[string]*FileStore),
	}
}

func (r *Registry) Dir() string {
	return r.dir
}

// ForUser returns the user's store, creating and loading it if needed.
// Load failures are logged by the store and leave it empty.
func (r *Registry) ForUser(username string) *FileStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[username]; ok {
		return s
	}
	s := NewFileStore(r.dir, username)
	_ = s.Load()
	r.stores[username] = s
	return s
}

// Library satisfies LibraryProvider.
func (r *Registry) Library(username string) Library {
	return r.ForUser(username)
}

// Release saves the user's store and drops it from the cache, so the next
// ForUser call reloads from disk.
func (r *Registry) Release(username string) error {
	r.mu.Lock()
	s, ok := r.stores[username]
	delete(r.stores, username)
	r.mu.Unlock()

	if !ok {
		return nil
	}
	return s.Save()
}

// SaveAll saves every cached store.
func (r *Registry) SaveAll() error {
	r.mu.Lock()
	stores := make([]*FileStore, 0, len(r.stores))
	for _, s := range r.stores {
		stores = append(stores, s)
	}
	r.mu.Unlock()

	var errs []error
	for _, s := range stores {
		if err := s.Save(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
