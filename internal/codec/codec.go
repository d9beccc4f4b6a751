// Package codec converts catalog and personal library records to and from
// the comma-delimited lines of the backing files.
//
// The format predates this package and has no quoting: a comma inside a
// title, author or review shifts every later column. Writing escapes would
// break existing files, so none are written or expected.
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"booktracker/internal/book"
)

// ErrMalformed is returned for lines that cannot produce a record.
var ErrMalformed = errors.New("malformed record line")

const (
	// CatalogHeader is the first line of the catalog file.
	CatalogHeader = "Title,Author,Average Rating,Rating Count,Reviews"

	noRatingText  = "No rating"
	noReviewsText = "No reviews"
	reviewSep     = ", "
	fieldSep      = ","
)

// SplitFields splits a line on commas. Trailing empty fields are dropped,
// which is how the files have always been read back.
func SplitFields(line string) []string {
	fields := strings.Split(line, fieldSep)
	n := len(fields)
	for n > 0 && fields[n-1] == "" {
		n--
	}
	return fields[:n]
}

// EncodeBook renders a catalog line:
// title,author,ratingDisplay,ratingCount,reviewsDisplay.
func EncodeBook(b *book.Book) string {
	rating := noRatingText
	if b.RatingCount() > 0 {
		rating = fmt.Sprintf("%.2f", b.AverageRating())
	}
	reviews := noReviewsText
	if r := b.Reviews(); len(r) > 0 {
		reviews = strings.Join(r, reviewSep)
	}
	return strings.Join([]string{
		b.Title(),
		b.Author(),
		rating,
		strconv.Itoa(b.RatingCount()),
		reviews,
	}, fieldSep)
}

// DecodeBook parses a catalog line. Unparseable rating columns are skipped
// without rejecting the line. Only the fifth column is read for reviews, and
// the "No reviews" placeholder written by EncodeBook is not a review.
func DecodeBook(line string) (book.Book, error) {
	fields := SplitFields(line)
	if len(fields) < 2 {
		return book.Book{}, ErrMalformed
	}
	b := book.New(fields[0], fields[1])

	if len(fields) >= 3 {
		if mean, count, ok := parseRating(fields); ok && mean >= 0 {
			b.RestoreRating(mean, count)
		}
	}

	if len(fields) >= 5 && fields[4] != noReviewsText {
		for _, review := range strings.Split(fields[4], reviewSep) {
			b.AddReview(review)
		}
	}
	return b, nil
}

func parseRating(fields []string) (float64, int, bool) {
	mean, ok := parseFinite(fields[2])
	if !ok {
		return 0, 0, false
	}
	count := 0
	if len(fields) >= 4 {
		count, err = strconv.Atoi(fields[3])
		if err != nil {
			return 0, 0, false
		}
	}
	return mean, count, true
}

// EncodeEntry renders a personal library line: the six fixed columns, then
// every user rating, then every user review.
func EncodeEntry(e *book.Entry) string {
	fields := []string{
		e.Title(),
		e.Author(),
		e.Status,
		strconv.Itoa(e.TimeSpent()),
		e.StartDate,
		e.EndDate,
	}
	for _, r := range e.UserRatings() {
		fields = append(fields, FormatRating(r))
	}
	fields = append(fields, e.UserReviews()...)
	return strings.Join(fields, fieldSep)
}

// DecodeEntry parses a personal library line. Columns after the sixth are
// ratings or reviews as decided by ClassifyTrailingField.
func DecodeEntry(line string) (book.Entry, error) {
	fields := SplitFields(line)
	if len(fields) < 6 {
		return book.Entry{}, ErrMalformed
	}
	minutes, err := strconv.Atoi(fields[3])
	if err != nil {
		return book.Entry{}, fmt.Errorf("%w: time spent %q", ErrMalformed, fields[3])
	}

	e := book.NewEntry(fields[0], fields[1])
	e.Status = fields[2]
	e.AddTimeSpent(minutes)
	e.StartDate = fields[4]
	e.EndDate = fields[5]

	for _, field := range fields[6:] {
		if rating, ok := ClassifyTrailingField(field); ok {
			e.AddUserRating(rating)
		} else {
			e.AddUserReview(field)
		}
	}
	return e, nil
}

// ClassifyTrailingField decides whether a trailing personal library column
// is a rating or a review. The file does not tag them, so anything that
// parses as a finite number is a rating; a review reading "42" comes back as
// a rating of 42, while "inf" or "NaN" stay reviews.
func ClassifyTrailingField(field string) (float64, bool) {
	return parseFinite(strings.TrimSpace(field))
}

// parseFinite parses s as a decimal number, rejecting the infinity and NaN
// spellings strconv otherwise accepts.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// FormatRating writes a rating the way existing files hold them: shortest
// form, always with a decimal point ("4.0", "3.5").
func FormatRating(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
