package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booktracker/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratedBook(title, author string, ratings ...float64) book.Book {
	b := book.New(title, author)
	for _, r := range ratings {
		b.AddRating(r)
	}
	return b
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("paged search", func(t *testing.T) {
		mockRepo.EXPECT().Search("austen").Return([]book.Book{
			book.New("Emma", "Jane Austen"),
			book.New("Persuasion", "Jane Austen"),
			book.New("Sanditon", "Jane Austen"),
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?q=austen&page=2&page_size=2", nil)

		handler.List(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []BookView     `json:"data"`
			Meta map[string]any `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Sanditon", resp.Data[0].Title)
		assert.Nil(t, resp.Data[0].AverageRating)
		assert.Equal(t, float64(3), resp.Meta["total"])
		assert.Equal(t, float64(2), resp.Meta["total_pages"])
	})

	t.Run("empty catalog", func(t *testing.T) {
		mockRepo.EXPECT().Search("").Return([]book.Book{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":0`)
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().FindByTitle("dune").Return(ratedBook("Dune", "Frank Herbert", 4, 5), true)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/dune", nil)
		r.SetPathValue("title", "dune")

		handler.Get(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"average_rating":4.5`)
		assert.Contains(t, w.Body.String(), `"rating_count":2`)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByTitle("missing").Return(book.Book{}, false)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/missing", nil)
		r.SetPathValue("title", "missing")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockRepository)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"title":"Dune","author":"Frank Herbert"}`,
			setupMock: func(m *MockRepository) {
				m.EXPECT().Add(book.New("Dune", "Frank Herbert"))
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing author",
			body:           `{"title":"Dune"}`,
			setupMock:      func(m *MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "comma in title",
			body:           `{"title":"Dune, Messiah","author":"Frank Herbert"}`,
			setupMock:      func(m *MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank after trimming",
			body:           `{"title":"   ","author":"Frank Herbert"}`,
			setupMock:      func(m *MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           `{`,
			setupMock:      func(m *MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := NewMockRepository(ctrl)
			tt.setupMock(mockRepo)
			handler := NewHTTPHandler(NewService(mockRepo))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))

			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHTTPHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("rename", func(t *testing.T) {
		mockRepo.EXPECT().Edit("Dune", "Dune Messiah", "").Return(ratedBook("Dune Messiah", "Frank Herbert", 4), true)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/books/Dune", strings.NewReader(`{"title":"Dune Messiah"}`))
		r.SetPathValue("title", "Dune")

		handler.Update(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Dune Messiah"`)
		assert.Contains(t, w.Body.String(), `"average_rating":4`)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Edit("Missing", "", "Someone").Return(book.Book{}, false)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/books/Missing", strings.NewReader(`{"author":"Someone"}`))
		r.SetPathValue("title", "Missing")

		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().RemoveByTitle("Dune").Return(true)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books/Dune", nil)
		r.SetPathValue("title", "Dune")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().RemoveByTitle("Dune").Return(false)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books/Dune", nil)
		r.SetPathValue("title", "Dune")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
