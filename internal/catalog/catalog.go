package catalog

import (
	"errors"

	"booktracker/internal/book"
)

var (
	ErrNotFound    = errors.New("book not found in catalog")
	ErrInvalidBook = errors.New("title and author are required")
)

// BookView is the catalog book as returned to API and CLI callers.
// AverageRating is nil while the book is unrated.
type BookView struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	AverageRating *float64 `json:"average_rating"`
	RatingCount   int      `json:"rating_count"`
	Reviews       []string `json:"reviews"`
}

func NewBookView(b *book.Book) BookView {
	v := BookView{
		Title:       b.Title(),
		Author:      b.Author(),
		RatingCount: b.RatingCount(),
		Reviews:     b.Reviews(),
	}
	if v.Reviews == nil {
		v.Reviews = []string{}
	}
	if b.RatingCount() > 0 {
		avg := b.AverageRating()
		v.AverageRating = &avg
	}
	return v
}

func NewBookViews(books []book.Book) []BookView {
	views := make([]BookView, 0, len(books))
	for i := range books {
		views = append(views, NewBookView(&books[i]))
	}
	return views
}
