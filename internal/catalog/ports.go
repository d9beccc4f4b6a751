package catalog

import "booktracker/internal/book"

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository is the shared catalog. Mutations persist before returning.
type Repository interface {
	All() []book.Book
	Search(q string) []book.Book
	FindByTitle(title string) (book.Book, bool)
	Add(b book.Book)
	Edit(title, newTitle, newAuthor string) (book.Book, bool)
	RemoveByTitle(title string) bool
	UpdateRating(title string, rating float64)
	AddReview(title, text string)
}
