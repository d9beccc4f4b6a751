package user

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"booktracker/internal/platform/flatfile"
)

// FileStore keeps credentials as "username,password" lines. Lines with
// any other number of fields are ignored on read and preserved on write.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) readLines() ([]string, error) {
	lines, err := flatfile.ReadLines(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return lines, nil
}

func parseCredential(line string) (Credential, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return Credential{}, false
	}
	return Credential{Username: parts[0], Password: parts[1]}, true
}

func (s *FileStore) Find(username string) (Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.readLines()
	if err != nil {
		return Credential{}, false, err
	}
	for _, line := range lines {
		if c, ok := parseCredential(line); ok && c.Username == username {
			return c, true, nil
		}
	}
	return Credential{}, false, nil
}

// Create adds a credential line, failing if the username is taken.
func (s *FileStore) Create(c Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.readLines()
	if err != nil {
		return err
	}
	for _, line := range lines {
		if existing, ok := parseCredential(line); ok && existing.Username == c.Username {
			return ErrAlreadyExists
		}
	}

	lines = append(lines, c.Username+","+c.Password)
	if err := flatfile.WriteLines(s.path, lines); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
