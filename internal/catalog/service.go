package catalog

import (
	"strings"

	"booktracker/internal/book"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns the books matching q, with the total before paging.
// A limit of zero or less returns every match.
func (s *Service) Search(q string, limit, offset int) ([]BookView, int) {
	books := s.repo.Search(q)
	total := len(books)

	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return NewBookViews(books[offset:end]), total
}

func (s *Service) Get(title string) (BookView, error) {
	b, ok := s.repo.FindByTitle(title)
	if !ok {
		return BookView{}, ErrNotFound
	}
	return NewBookView(&b), nil
}

// Create adds a book to the catalog. Duplicate titles are allowed.
func (s *Service) Create(title, author string) (BookView, error) {
	title, author = strings.TrimSpace(title), strings.TrimSpace(author)
	if title == "" || author == "" {
		return BookView{}, ErrInvalidBook
	}
	b := book.New(title, author)
	s.repo.Add(b)
	return NewBookView(&b), nil
}

// Update renames the first book matching title. Blank fields are left as
// they are.
func (s *Service) Update(title, newTitle, newAuthor string) (BookView, error) {
	newTitle, newAuthor = strings.TrimSpace(newTitle), strings.TrimSpace(newAuthor)
	b, ok := s.repo.Edit(title, newTitle, newAuthor)
	if !ok {
		return BookView{}, ErrNotFound
	}
	return NewBookView(&b), nil
}

// Delete removes every book whose title matches.
func (s *Service) Delete(title string) error {
	if !s.repo.RemoveByTitle(title) {
		return ErrNotFound
	}
	return nil
}
