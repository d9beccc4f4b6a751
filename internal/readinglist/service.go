package readinglist

import (
	"fmt"
	"math"
	"strings"
	"time"

	"booktracker/internal/book"
)

// Service implements the personal library actions, including the rating
// and review propagation to the shared catalog.
type Service struct {
	libraries LibraryProvider
	catalog   Catalog
	now       func() time.Time
}

func NewService(libraries LibraryProvider, catalog Catalog) *Service {
	return &Service{
		libraries: libraries,
		catalog:   catalog,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for status dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) library(username string) (Library, error) {
	if username == "" {
		return nil, ErrNoUser
	}
	return s.libraries.Library(username), nil
}

func (s *Service) List(username string) ([]EntryView, error) {
	lib, err := s.library(username)
	if err != nil {
		return nil, err
	}
	entries := lib.All()
	views := make([]EntryView, 0, len(entries))
	for i := range entries {
		views = append(views, NewEntryView(&entries[i]))
	}
	return views, nil
}

func (s *Service) Get(username, title string) (EntryView, error) {
	lib, err := s.library(username)
	if err != nil {
		return EntryView{}, err
	}
	e, ok := lib.FindByTitle(title)
	if !ok {
		return EntryView{}, ErrNotFound
	}
	return NewEntryView(&e), nil
}

// AddFromCatalog copies a catalog book into the user's library as a new
// Not Started entry.
func (s *Service) AddFromCatalog(username, title string) (EntryView, error) {
	lib, err := s.library(username)
	if err != nil {
		return EntryView{}, err
	}
	b, ok := s.catalog.FindByTitle(title)
	if !ok {
		return EntryView{}, fmt.Errorf("%w: %s", ErrNotInCatalog, title)
	}

	e := book.NewEntry(b.Title(), b.Author())
	if !lib.AddIfAbsent(e) {
		return EntryView{}, fmt.Errorf("%w: %s", ErrAlreadyInLibrary, b.Title())
	}
	return NewEntryView(&e), nil
}

func (s *Service) Delete(username, title string) error {
	lib, err := s.library(username)
	if err != nil {
		return err
	}
	if !lib.Delete(title) {
		return ErrNotFound
	}
	return nil
}

// Rate records a 1-5 rating on the entry and folds it into the catalog's
// aggregate for the same title.
func (s *Service) Rate(username, title string, rating float64) (EntryView, error) {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return EntryView{}, ErrInvalidRating
	}
	lib, err := s.library(username)
	if err != nil {
		return EntryView{}, err
	}

	var updated book.Entry
	if !lib.Update(title, func(e *book.Entry) {
		e.AddUserRating(rating)
		updated = e.Clone()
	}) {
		return EntryView{}, ErrNotFound
	}

	s.catalog.UpdateRating(updated.Title(), rating)
	return NewEntryView(&updated), nil
}

// Review stores "<user>: <text>" on the entry and on the catalog book.
func (s *Service) Review(username, title, text string) (EntryView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return EntryView{}, ErrEmptyReview
	}
	lib, err := s.library(username)
	if err != nil {
		return EntryView{}, err
	}

	review := username + ": " + text
	var updated book.Entry
	if !lib.Update(title, func(e *book.Entry) {
		e.AddUserReview(review)
		updated = e.Clone()
	}) {
		return EntryView{}, ErrNotFound
	}

	s.catalog.AddReview(updated.Title(), review)
	return NewEntryView(&updated), nil
}

// ChangeStatus moves the entry to one of the known statuses, stamping the
// start date on the first Ongoing and the end date on every Completed.
func (s *Service) ChangeStatus(username, title, status string) (EntryView, error) {
	if err := ValidateStatus(status); err != nil {
		return EntryView{}, err
	}
	lib, err := s.library(username)
	if err != nil {
		return EntryView{}, err
	}

	now := s.now()
	var updated book.Entry
	if !lib.Update(title, func(e *book.Entry) {
		e.ApplyStatus(status, now)
		updated = e.Clone()
	}) {
		return EntryView{}, ErrNotFound
	}
	return NewEntryView(&updated), nil
}

// AddTime records minutes of reading on the entry.
func (s *Service) AddTime(username, title string, minutes int) error {
	lib, err := s.library(username)
	if err != nil {
		return err
	}
	if !lib.AddTime(title, minutes) {
		return ErrNotFound
	}
	return nil
}
