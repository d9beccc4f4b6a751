package codec

import (
	"testing"

	"booktracker/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain", line: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "trailing empties dropped", line: "a,b,,", want: []string{"a", "b"}},
		{name: "inner empties kept", line: "a,,b", want: []string{"a", "", "b"}},
		{name: "empty line", line: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFields(tt.line))
		})
	}
}

func TestEncodeBook(t *testing.T) {
	t.Run("unrated without reviews", func(t *testing.T) {
		b := book.New("Dune", "Frank Herbert")
		assert.Equal(t, "Dune,Frank Herbert,No rating,0,No reviews", EncodeBook(&b))
	})

	t.Run("rated with reviews", func(t *testing.T) {
		b := book.New("Dune", "Frank Herbert")
		b.AddRating(4)
		b.AddRating(5)
		b.AddRating(5)
		b.AddReview("alice: great")
		b.AddReview("bob: long")
		assert.Equal(t, "Dune,Frank Herbert,4.67,3,alice: great, bob: long", EncodeBook(&b))
	})
}

func TestDecodeBook(t *testing.T) {
	t.Run("too few fields", func(t *testing.T) {
		_, err := DecodeBook("Dune")
		assert.ErrorIs(t, err, ErrMalformed)

		_, err = DecodeBook("Dune,,,")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("title and author only", func(t *testing.T) {
		b, err := DecodeBook("Dune,Frank Herbert")
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title())
		assert.Equal(t, "Frank Herbert", b.Author())
		assert.Equal(t, 0, b.RatingCount())
	})

	t.Run("bad rating is skipped, line kept", func(t *testing.T) {
		b, err := DecodeBook("Dune,Frank Herbert,abc,7,nice")
		require.NoError(t, err)
		assert.Equal(t, 0, b.RatingCount())
		assert.Equal(t, book.NoRating, b.AverageRating())
		assert.Equal(t, []string{"nice"}, b.Reviews())
	})

	t.Run("bad count skips rating", func(t *testing.T) {
		b, err := DecodeBook("Dune,Frank Herbert,4.00,x")
		require.NoError(t, err)
		assert.Equal(t, 0, b.RatingCount())
	})

	t.Run("mean without count is one sample", func(t *testing.T) {
		b, err := DecodeBook("Dune,Frank Herbert,3.50")
		require.NoError(t, err)
		assert.Equal(t, 3.5, b.AverageRating())
		assert.Equal(t, 1, b.RatingCount())
	})

	t.Run("negative mean is ignored", func(t *testing.T) {
		b, err := DecodeBook("Dune,Frank Herbert,-1,0")
		require.NoError(t, err)
		assert.Equal(t, 0, b.RatingCount())
	})

	t.Run("non-finite mean is ignored", func(t *testing.T) {
		for _, mean := range []string{"Infinity", "inf", "NaN", "-Infinity"} {
			b, err := DecodeBook("Dune,Frank Herbert," + mean + ",3,No reviews")
			require.NoError(t, err, mean)
			assert.Equal(t, 0, b.RatingCount(), mean)
			assert.Equal(t, book.NoRating, b.AverageRating(), mean)
		}
	})

	t.Run("only the fifth column holds reviews", func(t *testing.T) {
		b, err := DecodeBook("Dune,Frank Herbert,4.00,1,alice: great, bob: long")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice: great"}, b.Reviews())
	})
}

func TestBookRoundTrip(t *testing.T) {
	t.Run("no rating and no reviews", func(t *testing.T) {
		b := book.New("Dune", "Frank Herbert")
		got, err := DecodeBook(EncodeBook(&b))
		require.NoError(t, err)
		assert.Equal(t, 0, got.RatingCount())
		assert.Equal(t, book.NoRating, got.AverageRating())
		assert.Empty(t, got.Reviews())
	})

	t.Run("rating history collapses to the persisted mean", func(t *testing.T) {
		b := book.New("Dune", "Frank Herbert")
		b.AddRating(4.0)
		b.AddRating(5.0)

		got, err := DecodeBook(EncodeBook(&b))
		require.NoError(t, err)
		assert.Equal(t, 2, got.RatingCount())
		assert.Equal(t, 4.5, got.AverageRating())
	})

	t.Run("single review", func(t *testing.T) {
		b := book.New("Dune", "Frank Herbert")
		b.AddReview("alice: great")

		got, err := DecodeBook(EncodeBook(&b))
		require.NoError(t, err)
		assert.Equal(t, []string{"alice: great"}, got.Reviews())
	})
}

func TestEncodeEntry(t *testing.T) {
	e := book.NewEntry("Dune", "Frank Herbert")
	e.Status = book.StatusOngoing
	e.AddTimeSpent(42)
	e.StartDate = "05/03/24"
	e.AddUserRating(4)
	e.AddUserRating(3.5)
	e.AddUserReview("alice: great")

	assert.Equal(t, "Dune,Frank Herbert,Ongoing,42,05/03/24,N/A,4.0,3.5,alice: great", EncodeEntry(&e))
}

func TestDecodeEntry(t *testing.T) {
	t.Run("too few fields", func(t *testing.T) {
		_, err := DecodeEntry("Dune,Frank Herbert,Ongoing,1,N/A")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("non numeric time spent", func(t *testing.T) {
		_, err := DecodeEntry("Dune,Frank Herbert,Ongoing,abc,N/A,N/A")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("fixed columns", func(t *testing.T) {
		e, err := DecodeEntry("Dune,Frank Herbert,Reading-ish,15,01/01/24,N/A")
		require.NoError(t, err)
		assert.Equal(t, "Dune", e.Title())
		assert.Equal(t, "Frank Herbert", e.Author())
		assert.Equal(t, "Reading-ish", e.Status, "status is not validated")
		assert.Equal(t, 15, e.TimeSpent())
		assert.Equal(t, "01/01/24", e.StartDate)
		assert.Equal(t, book.NoDate, e.EndDate)
	})

	t.Run("trailing fields are classified", func(t *testing.T) {
		e, err := DecodeEntry("Dune,Frank Herbert,Completed,90,01/01/24,02/01/24,4.0,alice: fine,5.0")
		require.NoError(t, err)
		assert.Equal(t, []float64{4, 5}, e.UserRatings())
		assert.Equal(t, []string{"alice: fine"}, e.UserReviews())
		assert.Equal(t, 4.5, e.AverageRating())
		assert.Equal(t, 2, e.RatingCount())
	})
}

func TestDecodeEntry_NonFiniteTrailingFieldsAreReviews(t *testing.T) {
	e, err := DecodeEntry("Dune,Frank Herbert,Ongoing,5,N/A,N/A,inf,nan,3.0")
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, e.UserRatings())
	assert.Equal(t, []string{"inf", "nan"}, e.UserReviews())
	assert.Equal(t, 3.0, e.AverageRating())
}

func TestEntryRoundTrip(t *testing.T) {
	t.Run("ratings and reviews survive", func(t *testing.T) {
		e := book.NewEntry("Dune", "Frank Herbert")
		e.AddTimeSpent(3)
		e.AddUserRating(2)
		e.AddUserReview("bob: slow start")

		got, err := DecodeEntry(EncodeEntry(&e))
		require.NoError(t, err)
		assert.Equal(t, e.Status, got.Status)
		assert.Equal(t, 3, got.TimeSpent())
		assert.Equal(t, []float64{2}, got.UserRatings())
		assert.Equal(t, []string{"bob: slow start"}, got.UserReviews())
	})

	t.Run("numeric review comes back as a rating", func(t *testing.T) {
		e := book.NewEntry("Dune", "Frank Herbert")
		e.AddUserReview("42")

		got, err := DecodeEntry(EncodeEntry(&e))
		require.NoError(t, err)
		assert.Equal(t, []float64{42}, got.UserRatings())
		assert.Empty(t, got.UserReviews())
		assert.Equal(t, 42.0, got.AverageRating())
	})
}

func TestClassifyTrailingField(t *testing.T) {
	tests := []struct {
		field    string
		want     float64
		isRating bool
	}{
		{field: "4.0", want: 4, isRating: true},
		{field: "3", want: 3, isRating: true},
		{field: " 2.5", want: 2.5, isRating: true},
		{field: "alice: nice", isRating: false},
		{field: "4 stars", isRating: false},
		{field: "inf", isRating: false},
		{field: "Infinity", isRating: false},
		{field: "-Inf", isRating: false},
		{field: "nan", isRating: false},
		{field: "NaN", isRating: false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := ClassifyTrailingField(tt.field)
			assert.Equal(t, tt.isRating, ok)
			if tt.isRating {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.0", FormatRating(4))
	assert.Equal(t, "3.5", FormatRating(3.5))
	assert.Equal(t, "42.0", FormatRating(42))
}
