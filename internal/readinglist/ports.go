package readinglist

import "booktracker/internal/book"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=readinglist

// Library is one user's personal library. Mutations persist before
// returning.
type Library interface {
	All() []book.Entry
	FindByTitle(title string) (book.Entry, bool)
	Add(e book.Entry)
	AddIfAbsent(e book.Entry) bool
	Delete(title string) bool
	Update(title string, fn func(*book.Entry)) bool
	AddTime(title string, minutes int) bool
}

type LibraryProvider interface {
	Library(username string) Library
}

// Catalog is the part of the shared catalog that personal actions touch.
type Catalog interface {
	FindByTitle(title string) (book.Book, bool)
	UpdateRating(title string, rating float64)
	AddReview(title, text string)
}
