// Package session tracks who is logged in: the on-disk marker that lets
// the command line client log in automatically, and the set of access
// tokens revoked by logout.
package session

import (
	"errors"
	"os"
	"strings"

	"booktracker/internal/platform/flatfile"
)

// Marker is a one-line file naming the logged-in user. Its absence means
// nobody is logged in.
type Marker struct {
	path string
}

func NewMarker(path string) *Marker {
	return &Marker{path: path}
}

func (m *Marker) Save(username string) error {
	return flatfile.WriteLines(m.path, []string{username})
}

// Current returns the saved username, if any.
func (m *Marker) Current() (string, bool, error) {
	lines, err := flatfile.ReadLines(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if len(lines) == 0 {
		return "", false, nil
	}
	name := strings.TrimSpace(lines[0])
	return name, name != "", nil
}

// Clear deletes the marker. A missing marker is not an error.
func (m *Marker) Clear() error {
	err := os.Remove(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
