package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"booktracker/internal/book"
	"booktracker/internal/codec"
	"booktracker/internal/platform/flatfile"
)

// FileStore keeps the catalog in memory and rewrites the whole backing
// file after every mutation.
type FileStore struct {
	mu    sync.Mutex
	path  string
	books []book.Book
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load replaces the in-memory catalog with the file's contents. The header
// line is skipped and malformed lines are dropped. A missing file is an
// empty catalog. On a read error the catalog stays empty.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = nil

	lines, err := flatfile.ReadLines(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		log.Printf("catalog: load failed path=%s err=%v", s.path, err)
		return fmt.Errorf("load catalog: %w", err)
	}

	skipped := 0
	for i, line := range lines {
		if i == 0 {
			continue
		}
		b, err := codec.DecodeBook(line)
		if err != nil {
			skipped++
			continue
		}
		s.books = append(s.books, b)
	}
	if skipped > 0 {
		log.Printf("catalog: dropped malformed lines path=%s count=%d", s.path, skipped)
	}
	return nil
}

// Save writes the header and every book, replacing the file.
func (s *FileStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *FileStore) saveLocked() error {
	lines := make([]string, 0, len(s.books)+1)
	lines = append(lines, codec.CatalogHeader)
	for i := range s.books {
		lines = append(lines, codec.EncodeBook(&s.books[i]))
	}
	if err := flatfile.WriteLines(s.path, lines); err != nil {
		log.Printf("catalog: save failed path=%s err=%v", s.path, err)
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func (s *FileStore) All() []book.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]book.Book, len(s.books))
	for i := range s.books {
		out[i] = s.books[i].Clone()
	}
	return out
}

// Search matches q case-insensitively against title and author. An empty
// query returns every book.
func (s *FileStore) Search(q string) []book.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	q = strings.TrimSpace(q)
	out := []book.Book{}
	for i := range s.books {
		if s.books[i].Matches(q) {
			out = append(out, s.books[i].Clone())
		}
	}
	return out
}

func (s *FileStore) FindByTitle(title string) (book.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(title); i >= 0 {
		return s.books[i].Clone(), true
	}
	return book.Book{}, false
}

func (s *FileStore) Add(b book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, b.Clone())
	_ = s.saveLocked()
}

// Edit renames the first book matching title and returns a copy of it.
// Empty replacements keep the current value.
func (s *FileStore) Edit(title, newTitle, newAuthor string) (book.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(title)
	if i < 0 {
		return book.Book{}, false
	}
	if newTitle != "" {
		s.books[i].SetTitle(newTitle)
	}
	if newAuthor != "" {
		s.books[i].SetAuthor(newAuthor)
	}
	_ = s.saveLocked()
	return s.books[i].Clone(), true
}

// RemoveByTitle drops every book whose title matches case-insensitively and
// reports whether any was removed. The file is only rewritten on removal.
func (s *FileStore) RemoveByTitle(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.books[:0]
	for _, b := range s.books {
		if !b.MatchesTitle(title) {
			kept = append(kept, b)
		}
	}
	removed := len(kept) != len(s.books)
	clear(s.books[len(kept):])
	s.books = kept
	if removed {
		_ = s.saveLocked()
	}
	return removed
}

// UpdateRating folds rating into the first matching book. Unknown titles
// are ignored.
func (s *FileStore) UpdateRating(title string, rating float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(title)
	if i < 0 {
		return
	}
	s.books[i].AddRating(rating)
	_ = s.saveLocked()
}

// AddReview appends text to the first matching book. Unknown titles are
// ignored and blank text is dropped.
func (s *FileStore) AddReview(title, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(title)
	if i < 0 || strings.TrimSpace(text) == "" {
		return
	}
	s.books[i].AddReview(text)
	_ = s.saveLocked()
}

func (s *FileStore) indexLocked(title string) int {
	for i := range s.books {
		if s.books[i].MatchesTitle(title) {
			return i
		}
	}
	return -1
}
