package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry_Defaults(t *testing.T) {
	e := NewEntry("Dune", "Frank Herbert")

	assert.Equal(t, StatusNotStarted, e.Status)
	assert.Equal(t, NoDate, e.StartDate)
	assert.Equal(t, NoDate, e.EndDate)
	assert.Equal(t, 0, e.TimeSpent())
	assert.Empty(t, e.UserRatings())
	assert.Empty(t, e.UserReviews())
	assert.Equal(t, NoRating, e.AverageRating())
}

func TestEntry_AddTimeSpent(t *testing.T) {
	e := NewEntry("Dune", "Frank Herbert")
	e.AddTimeSpent(5)
	e.AddTimeSpent(0)
	e.AddTimeSpent(-3)
	e.AddTimeSpent(2)

	assert.Equal(t, 7, e.TimeSpent())
}

func TestEntry_AddUserRatingFeedsAggregate(t *testing.T) {
	e := NewEntry("Dune", "Frank Herbert")
	e.AddUserRating(4)
	e.AddUserRating(5)

	assert.Equal(t, []float64{4, 5}, e.UserRatings())
	assert.Equal(t, 4.5, e.AverageRating())
	assert.Equal(t, 2, e.RatingCount())
}

func TestEntry_AddUserReview(t *testing.T) {
	e := NewEntry("Dune", "Frank Herbert")
	e.AddUserReview("alice: loved it")
	e.AddUserReview("")

	assert.Equal(t, []string{"alice: loved it"}, e.UserReviews())
}

func TestEntry_ApplyStatus(t *testing.T) {
	first := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	second := time.Date(2024, time.April, 9, 10, 0, 0, 0, time.UTC)
	third := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	e := NewEntry("Dune", "Frank Herbert")

	e.ApplyStatus(StatusOngoing, first)
	assert.Equal(t, StatusOngoing, e.Status)
	assert.Equal(t, "05/03/24", e.StartDate)
	assert.Equal(t, NoDate, e.EndDate)

	e.ApplyStatus(StatusCompleted, second)
	assert.Equal(t, "09/04/24", e.EndDate)

	e.ApplyStatus(StatusOngoing, third)
	assert.Equal(t, "05/03/24", e.StartDate, "start date is only set once")

	e.ApplyStatus(StatusCompleted, third)
	assert.Equal(t, "01/05/24", e.EndDate, "end date is set on every completion")

	e.ApplyStatus("Abandoned", third)
	assert.Equal(t, "Abandoned", e.Status)
}

func TestEntry_Clone(t *testing.T) {
	e := NewEntry("Dune", "Frank Herbert")
	e.AddUserRating(3)
	e.AddUserReview("ok")

	c := e.Clone()
	c.AddUserRating(5)
	c.AddUserReview("better")
	c.AddTimeSpent(10)

	assert.Equal(t, []float64{3}, e.UserRatings())
	assert.Equal(t, []string{"ok"}, e.UserReviews())
	assert.Equal(t, 0, e.TimeSpent())
	assert.Equal(t, 1, e.RatingCount())
}
