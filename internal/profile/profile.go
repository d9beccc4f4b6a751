package profile

import (
	"booktracker/internal/book"
	"booktracker/internal/readinglist"
	"booktracker/internal/user"
)

type Stats struct {
	BooksInLibrary int      `json:"books_in_library"`
	NotStarted     int      `json:"not_started"`
	Ongoing        int      `json:"ongoing"`
	BooksRead      int      `json:"books_read"`
	MinutesRead    int      `json:"minutes_read"`
	RatingsCount   int      `json:"ratings_count"`
	AverageRating  *float64 `json:"average_rating"`
	ReviewsCount   int      `json:"reviews_count"`
}

type Profile struct {
	User  user.User `json:"user"`
	Stats Stats     `json:"stats"`
}

// ComputeStats summarises a personal library. Entries with a status other
// than the three known ones only count towards the totals.
func ComputeStats(entries []readinglist.EntryView) Stats {
	var st Stats
	var ratingSum float64

	for _, e := range entries {
		st.BooksInLibrary++
		switch e.Status {
		case book.StatusNotStarted:
			st.NotStarted++
		case book.StatusOngoing:
			st.Ongoing++
		case book.StatusCompleted:
			st.BooksRead++
		}
		st.MinutesRead += e.TimeSpentMinutes
		st.ReviewsCount += len(e.UserReviews)
		for _, r := range e.UserRatings {
			ratingSum += r
			st.RatingsCount++
		}
	}

	if st.RatingsCount > 0 {
		avg := ratingSum / float64(st.RatingsCount)
		st.AverageRating = &avg
	}
	return st
}
