package readinglist

import (
	"errors"
	"net/http"

	"booktracker/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type addReq struct {
	Title string `json:"title" validate:"required,max=200"`
}

type rateReq struct {
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

type reviewReq struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type statusReq struct {
	Status string `json:"status" validate:"required,book_status"`
}

// List handles GET /me/books
// @Summary List personal library
// @Tags library
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /me/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(httpx.UsernameFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entries, map[string]any{"total": len(entries)})
}

// Add handles POST /me/books
// @Summary Add book to library
// @Description Copy a catalog book into the authenticated user's library
// @Tags library
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body addReq true "Catalog title"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /me/books [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.service.AddFromCatalog(httpx.UsernameFrom(r), req.Title)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, entry)
}

// Get handles GET /me/books/{title}
// @Summary Get library entry
// @Tags library
// @Produce json
// @Security Bearer
// @Param title path string true "Book title"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /me/books/{title} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.Get(httpx.UsernameFrom(r), r.PathValue("title"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

// Delete handles DELETE /me/books/{title}
// @Summary Remove book from library
// @Tags library
// @Security Bearer
// @Param title path string true "Book title"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /me/books/{title} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(httpx.UsernameFrom(r), r.PathValue("title")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// Rate handles POST /me/books/{title}/rating
// @Summary Rate a book
// @Description Record a 1 to 5 rating on the library entry and the catalog book
// @Tags library
// @Accept json
// @Produce json
// @Security Bearer
// @Param title path string true "Book title"
// @Param request body rateReq true "Rating"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /me/books/{title}/rating [post]
func (h *HTTPHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req rateReq
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.service.Rate(httpx.UsernameFrom(r), r.PathValue("title"), req.Rating)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

// Review handles POST /me/books/{title}/reviews
// @Summary Review a book
// @Description Append a review to the library entry and the catalog book
// @Tags library
// @Accept json
// @Produce json
// @Security Bearer
// @Param title path string true "Book title"
// @Param request body reviewReq true "Review text"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /me/books/{title}/reviews [post]
func (h *HTTPHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewReq
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.service.Review(httpx.UsernameFrom(r), r.PathValue("title"), req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, entry)
}

// ChangeStatus handles PUT /me/books/{title}/status
// @Summary Change reading status
// @Tags library
// @Accept json
// @Produce json
// @Security Bearer
// @Param title path string true "Book title"
// @Param request body statusReq true "New status"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /me/books/{title}/status [put]
func (h *HTTPHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req statusReq
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.service.ChangeStatus(httpx.UsernameFrom(r), r.PathValue("title"), req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		httpx.BadJSON(w, r)
		return false
	}
	if errs := httpx.ValidateStruct(dst); len(errs) > 0 {
		httpx.ValidationFailed(w, r, errs)
		return false
	}
	return true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNoUser):
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not in your library", nil)
	case errors.Is(err, ErrNotInCatalog):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_IN_CATALOG", "Book not found in catalog", nil)
	case errors.Is(err, ErrAlreadyInLibrary):
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Book already in your library", nil)
	case errors.Is(err, ErrInvalidRating), errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrEmptyReview):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
