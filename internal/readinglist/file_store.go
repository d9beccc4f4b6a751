package readinglist

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"booktracker/internal/book"
	"booktracker/internal/codec"
	"booktracker/internal/platform/flatfile"
)

// FileStore is one user's personal library, persisted to <dir>/<user>.csv
// without a header. A store built for the empty username never touches the
// filesystem.
type FileStore struct {
	mu       sync.Mutex
	username string
	path     string
	entries  []book.Entry
}

func NewFileStore(dir, username string) *FileStore {
	s := &FileStore{username: username}
	if username != "" {
		s.path = filepath.Join(dir, username+".csv")
	}
	return s
}

func (s *FileStore) Username() string {
	return s.username
}

// Path is empty for the empty username.
func (s *FileStore) Path() string {
	return s.path
}

// Load replaces the in-memory library with the file's contents, dropping
// malformed lines. A missing file is an empty library.
func (s *FileStore) Load() error {
	if s.path == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	lines, err := flatfile.ReadLines(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		log.Printf("readinglist: load failed user=%s path=%s err=%v", s.username, s.path, err)
		return fmt.Errorf("load library %s: %w", s.username, err)
	}

	skipped := 0
	for _, line := range lines {
		e, err := codec.DecodeEntry(line)
		if err != nil {
			skipped++
			continue
		}
		s.entries = append(s.entries, e)
	}
	if skipped > 0 {
		log.Printf("readinglist: dropped malformed lines user=%s count=%d", s.username, skipped)
	}
	return nil
}

// Save rewrites the user's file with every entry.
func (s *FileStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *FileStore) saveLocked() error {
	if s.path == "" {
		return nil
	}
	lines := make([]string, 0, len(s.entries))
	for i := range s.entries {
		lines = append(lines, codec.EncodeEntry(&s.entries[i]))
	}
	if err := flatfile.WriteLines(s.path, lines); err != nil {
		log.Printf("readinglist: save failed user=%s path=%s err=%v", s.username, s.path, err)
		return fmt.Errorf("save library %s: %w", s.username, err)
	}
	return nil
}

func (s *FileStore) All() []book.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]book.Entry, len(s.entries))
	for i := range s.entries {
		out[i] = s.entries[i].Clone()
	}
	return out
}

func (s *FileStore) Add(e book.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e.Clone())
	_ = s.saveLocked()
}

// AddIfAbsent appends e unless an entry with the same title exists. The
// check and the append happen under one lock.
func (s *FileStore) AddIfAbsent(e book.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(e.Title()) >= 0 {
		return false
	}
	s.entries = append(s.entries, e.Clone())
	_ = s.saveLocked()
	return true
}

// FindByTitle returns a copy of the first entry whose title matches
// case-insensitively.
func (s *FileStore) FindByTitle(title string) (book.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(title); i >= 0 {
		return s.entries[i].Clone(), true
	}
	return book.Entry{}, false
}

// Delete removes every entry whose title matches and reports whether any
// was removed. The file is only rewritten on removal.
func (s *FileStore) Delete(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if !e.MatchesTitle(title) {
			kept = append(kept, e)
		}
	}
	removed := len(kept) != len(s.entries)
	clear(s.entries[len(kept):])
	s.entries = kept
	if removed {
		_ = s.saveLocked()
	}
	return removed
}

// Update applies fn to the first matching entry and saves. It reports
// whether an entry matched; fn is not called otherwise.
func (s *FileStore) Update(title string, fn func(*book.Entry)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(title)
	if i < 0 {
		return false
	}
	fn(&s.entries[i])
	_ = s.saveLocked()
	return true
}

// AddTime adds minutes of reading time to the first matching entry and
// saves. Non-positive increments are ignored but still report the match.
func (s *FileStore) AddTime(title string, minutes int) bool {
	return s.Update(title, func(e *book.Entry) {
		e.AddTimeSpent(minutes)
	})
}

func (s *FileStore) indexLocked(title string) int {
	for i := range s.entries {
		if s.entries[i].MatchesTitle(title) {
			return i
		}
	}
	return -1
}
