package book

import (
	"strings"
	"time"
)

const (
	StatusNotStarted = "Not Started"
	StatusOngoing    = "Ongoing"
	StatusCompleted  = "Completed"
)

// NoDate marks a start or end date that was never set.
const NoDate = "N/A"

// DateLayout is the dd/MM/yy layout used for start and end dates.
const DateLayout = "02/01/06"

// Entry is one book tracked in a user's personal library. It refers to a
// catalog book by title only. The embedded Book carries the aggregate rating
// fed by AddUserRating.
type Entry struct {
	Book
	Status      string
	StartDate   string
	EndDate     string
	timeSpent   int
	userRatings []float64
	userReviews []string
}

// NewEntry creates a not-started entry.
func NewEntry(title, author string) Entry {
	return Entry{
		Book:      New(title, author),
		Status:    StatusNotStarted,
		StartDate: NoDate,
		EndDate:   NoDate,
	}
}

// TimeSpent returns the accumulated reading time in minutes.
func (e *Entry) TimeSpent() int { return e.timeSpent }

// AddTimeSpent adds minutes; non-positive values are ignored.
func (e *Entry) AddTimeSpent(minutes int) {
	if minutes > 0 {
		e.timeSpent += minutes
	}
}

func (e *Entry) UserRatings() []float64 {
	out := make([]float64, len(e.userRatings))
	copy(out, e.userRatings)
	return out
}

func (e *Entry) UserReviews() []string {
	out := make([]string, len(e.userReviews))
	copy(out, e.userReviews)
	return out
}

// AddUserRating records the rating and folds it into the aggregate.
// Range checks belong to the input layer.
func (e *Entry) AddUserRating(rating float64) {
	e.userRatings = append(e.userRatings, rating)
	e.AddRating(rating)
}

func (e *Entry) AddUserReview(review string) {
	if review != "" {
		e.userReviews = append(e.userReviews, review)
	}
}

// ApplyStatus sets the status and stamps dates: the first move to Ongoing
// sets StartDate, every move to Completed sets EndDate. Any other text is
// stored as is.
func (e *Entry) ApplyStatus(status string, now time.Time) {
	e.Status = status
	today := now.Format(DateLayout)
	switch status {
	case StatusOngoing:
		if e.StartDate == NoDate {
			e.StartDate = today
		}
	case StatusCompleted:
		e.EndDate = today
	}
}

func (e *Entry) IsCompleted() bool {
	return strings.EqualFold(e.Status, StatusCompleted)
}

// Clone returns a deep copy.
func (e *Entry) Clone() Entry {
	c := *e
	c.Book = e.Book.Clone()
	c.userRatings = e.UserRatings()
	c.userReviews = e.UserReviews()
	return c
}
