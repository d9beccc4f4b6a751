package readinglist

import (
	"errors"
	"fmt"

	"booktracker/internal/book"
)

var (
	ErrNotFound         = errors.New("book not in personal library")
	ErrNotInCatalog     = errors.New("book not in catalog")
	ErrAlreadyInLibrary = errors.New("book already in personal library")
	ErrInvalidRating    = errors.New("rating must be a number between 1 and 5")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrEmptyReview      = errors.New("review cannot be empty")
	ErrNoUser           = errors.New("no user")
)

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// ValidateStatus accepts only the three known statuses. Stored entries may
// still carry any text; this check applies to user input.
func ValidateStatus(status string) error {
	switch status {
	case book.StatusNotStarted, book.StatusOngoing, book.StatusCompleted:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
}

// EntryView is a personal library entry as returned to API and CLI callers.
type EntryView struct {
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	Status           string    `json:"status"`
	TimeSpentMinutes int       `json:"time_spent_minutes"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	AverageRating    *float64  `json:"average_rating"`
	UserRatings      []float64 `json:"user_ratings"`
	UserReviews      []string  `json:"user_reviews"`
}

func NewEntryView(e *book.Entry) EntryView {
	v := EntryView{
		Title:            e.Title(),
		Author:           e.Author(),
		Status:           e.Status,
		TimeSpentMinutes: e.TimeSpent(),
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		UserRatings:      e.UserRatings(),
		UserReviews:      e.UserReviews(),
	}
	if v.UserRatings == nil {
		v.UserRatings = []float64{}
	}
	if v.UserReviews == nil {
		v.UserReviews = []string{}
	}
	if e.RatingCount() > 0 {
		avg := e.AverageRating()
		v.AverageRating = &avg
	}
	return v
}
