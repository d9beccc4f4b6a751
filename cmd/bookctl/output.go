package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"booktracker/internal/catalog"
	"booktracker/internal/profile"
	"booktracker/internal/readinglist"
)

func formatRating(avg *float64, count int) string {
	if avg == nil {
		return "No rating"
	}
	return fmt.Sprintf("%.2f (%d)", *avg, count)
}

func printBooks(w io.Writer, books []catalog.BookView) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tAUTHOR\tRATING\tREVIEWS")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", b.Title, b.Author, formatRating(b.AverageRating, b.RatingCount), len(b.Reviews))
	}
	tw.Flush()
}

func printBook(w io.Writer, b catalog.BookView) {
	fmt.Fprintf(w, "Title:   %s\n", b.Title)
	fmt.Fprintf(w, "Author:  %s\n", b.Author)
	fmt.Fprintf(w, "Rating:  %s\n", formatRating(b.AverageRating, b.RatingCount))
	if len(b.Reviews) == 0 {
		fmt.Fprintln(w, "Reviews: none")
		return
	}
	fmt.Fprintln(w, "Reviews:")
	for _, r := range b.Reviews {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}

func printEntries(w io.Writer, entries []readinglist.EntryView) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Your library is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tAUTHOR\tSTATUS\tMINUTES\tSTARTED\tFINISHED\tRATING")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			e.Title, e.Author, e.Status, e.TimeSpentMinutes, e.StartDate, e.EndDate,
			formatRating(e.AverageRating, len(e.UserRatings)))
	}
	tw.Flush()
}

func printEntry(w io.Writer, e readinglist.EntryView) {
	fmt.Fprintf(w, "Title:    %s\n", e.Title)
	fmt.Fprintf(w, "Author:   %s\n", e.Author)
	fmt.Fprintf(w, "Status:   %s\n", e.Status)
	fmt.Fprintf(w, "Minutes:  %d\n", e.TimeSpentMinutes)
	fmt.Fprintf(w, "Started:  %s\n", e.StartDate)
	fmt.Fprintf(w, "Finished: %s\n", e.EndDate)
	fmt.Fprintf(w, "Rating:   %s\n", formatRating(e.AverageRating, len(e.UserRatings)))
	if len(e.UserReviews) > 0 {
		fmt.Fprintf(w, "Reviews:  %s\n", strings.Join(e.UserReviews, " | "))
	}
}

func printStats(w io.Writer, s profile.Stats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Books in library:\t%d\n", s.BooksInLibrary)
	fmt.Fprintf(tw, "Not started:\t%d\n", s.NotStarted)
	fmt.Fprintf(tw, "Ongoing:\t%d\n", s.Ongoing)
	fmt.Fprintf(tw, "Completed:\t%d\n", s.BooksRead)
	fmt.Fprintf(tw, "Minutes read:\t%d\n", s.MinutesRead)
	fmt.Fprintf(tw, "Ratings given:\t%s\n", formatRating(s.AverageRating, s.RatingsCount))
	fmt.Fprintf(tw, "Reviews written:\t%d\n", s.ReviewsCount)
	tw.Flush()
}
