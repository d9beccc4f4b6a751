package book

import (
	"strings"
)

// NoRating is reported by AverageRating while a book has no ratings.
const NoRating = -1.0

// Book is a shared catalog record.
type Book struct {
	title         string
	author        string
	averageRating float64
	ratingCount   int
	reviews       []string
}

// New creates an unrated book with no reviews.
func New(title, author string) Book {
	return Book{title: title, author: author}
}

func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }

func (b *Book) SetTitle(title string)   { b.title = title }
func (b *Book) SetAuthor(author string) { b.author = author }

// AverageRating returns the running mean, or NoRating when nothing was rated.
func (b *Book) AverageRating() float64 {
	if b.ratingCount > 0 {
		return b.averageRating
	}
	return NoRating
}

func (b *Book) RatingCount() int { return b.ratingCount }

// SetRatingCount overrides the sample count. Negative counts are ignored.
func (b *Book) SetRatingCount(n int) {
	if n >= 0 {
		b.ratingCount = n
	}
}

// AddRating folds one sample into the running mean.
func (b *Book) AddRating(rating float64) {
	b.averageRating = (b.averageRating*float64(b.ratingCount) + rating) / float64(b.ratingCount+1)
	b.ratingCount++
}

// RestoreRating rebuilds rating state from a persisted mean and count.
// The mean is kept as written; a count below one is treated as a single sample,
// so later AddRating calls continue from an equivalent mean.
func (b *Book) RestoreRating(mean float64, count int) {
	if count < 1 {
		count = 1
	}
	b.averageRating = mean
	b.ratingCount = count
}

// Reviews returns a copy of the reviews in insertion order.
func (b *Book) Reviews() []string {
	out := make([]string, len(b.reviews))
	copy(out, b.reviews)
	return out
}

// AddReview appends a review; empty text is dropped.
func (b *Book) AddReview(review string) {
	if review != "" {
		b.reviews = append(b.reviews, review)
	}
}

// MatchesTitle reports whether title equals the book title, ignoring case.
func (b *Book) MatchesTitle(title string) bool {
	return strings.EqualFold(b.title, title)
}

// Matches reports whether q occurs in the title or author, ignoring case.
// An empty query matches everything.
func (b *Book) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.title), q) || strings.Contains(strings.ToLower(b.author), q)
}

// Clone returns a deep copy.
func (b *Book) Clone() Book {
	c := *b
	c.reviews = b.Reviews()
	return c
}
