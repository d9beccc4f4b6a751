package tracker

import (
	"errors"
	"net/http"

	"booktracker/internal/httpx"
	"booktracker/internal/readinglist"
)

type HTTPHandler struct {
	tracker *Tracker
}

func NewHTTPHandler(tracker *Tracker) *HTTPHandler {
	return &HTTPHandler{tracker: tracker}
}

// Start handles POST /me/books/{title}/reading
// @Summary Start reading session
// @Description Start timing a book. Any running session for the user is stopped first
// @Tags reading
// @Produce json
// @Security Bearer
// @Param title path string true "Book title"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /me/books/{title}/reading [post]
func (h *HTTPHandler) Start(w http.ResponseWriter, r *http.Request) {
	username := httpx.UsernameFrom(r)
	if username == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	info, err := h.tracker.Start(username, r.PathValue("title"))
	if err != nil {
		if errors.Is(err, readinglist.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not in your library", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONCreated(w, r, info)
}

// Stop handles DELETE /me/books/{title}/reading
// @Summary Stop reading session
// @Description Stop timing a book and add the elapsed minutes to the library entry
// @Tags reading
// @Produce json
// @Security Bearer
// @Param title path string true "Book title"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /me/books/{title}/reading [delete]
func (h *HTTPHandler) Stop(w http.ResponseWriter, r *http.Request) {
	username := httpx.UsernameFrom(r)
	active, err := h.tracker.Active(username)
	if err != nil || !sameTitle(active.Title, r.PathValue("title")) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No reading session for this book", nil)
		return
	}

	info, err := h.tracker.Stop(username)
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No reading session for this book", nil)
		return
	}
	httpx.JSONSuccess(w, r, info, nil)
}

// Active handles GET /me/reading
// @Summary Active reading session
// @Tags reading
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /me/reading [get]
func (h *HTTPHandler) Active(w http.ResponseWriter, r *http.Request) {
	info, err := h.tracker.Active(httpx.UsernameFrom(r))
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No active reading session", nil)
		return
	}
	httpx.JSONSuccess(w, r, info, nil)
}
