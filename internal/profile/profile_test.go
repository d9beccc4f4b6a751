package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"booktracker/internal/book"
	"booktracker/internal/catalog"
	"booktracker/internal/httpx"
	"booktracker/internal/readinglist"
	"booktracker/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty library", func(t *testing.T) {
		st := ComputeStats(nil)
		assert.Equal(t, 0, st.BooksInLibrary)
		assert.Nil(t, st.AverageRating)
	})

	t.Run("mixed library", func(t *testing.T) {
		st := ComputeStats([]readinglist.EntryView{
			{Status: book.StatusCompleted, TimeSpentMinutes: 120, UserRatings: []float64{4, 5}, UserReviews: []string{"a: good"}},
			{Status: book.StatusOngoing, TimeSpentMinutes: 30, UserRatings: []float64{3}},
			{Status: book.StatusNotStarted},
			{Status: "Reading-ish", TimeSpentMinutes: 5},
		})

		assert.Equal(t, 4, st.BooksInLibrary)
		assert.Equal(t, 1, st.BooksRead)
		assert.Equal(t, 1, st.Ongoing)
		assert.Equal(t, 1, st.NotStarted)
		assert.Equal(t, 155, st.MinutesRead)
		assert.Equal(t, 3, st.RatingsCount)
		assert.Equal(t, 1, st.ReviewsCount)
		require.NotNil(t, st.AverageRating)
		assert.InDelta(t, 4.0, *st.AverageRating, 1e-9)
	})
}

func TestHTTPHandler_GetOwnProfile(t *testing.T) {
	dir := t.TempDir()
	users := user.NewService(user.NewFileStore(filepath.Join(dir, "users.txt")), "admin", "admin")
	_, err := users.Register("alice", "pw")
	require.NoError(t, err)

	cat := catalog.NewFileStore(filepath.Join(dir, "general.csv"))
	cat.Add(book.New("Dune", "Frank Herbert"))
	lists := readinglist.NewService(readinglist.NewRegistry(dir), cat)
	_, err = lists.AddFromCatalog("alice", "Dune")
	require.NoError(t, err)

	handler := NewHTTPHandler(NewService(users, lists))

	t.Run("authenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r = r.WithContext(httpx.ContextWithUser(context.Background(), "alice", user.RoleUser, "jti"))

		handler.GetOwnProfile(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
		assert.Contains(t, w.Body.String(), `"books_in_library":1`)
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetStats(w, httptest.NewRequest(http.MethodGet, "/me/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
