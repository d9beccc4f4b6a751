package catalog

import (
	"errors"
	"net/http"

	"booktracker/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type createBookRequest struct {
	Title  string `json:"title" validate:"required,max=200,excludesall=0x2C"`
	Author string `json:"author" validate:"required,max=200,excludesall=0x2C"`
}

type updateBookRequest struct {
	Title  string `json:"title" validate:"omitempty,max=200,excludesall=0x2C"`
	Author string `json:"author" validate:"omitempty,max=200,excludesall=0x2C"`
}

// List handles GET /books?q=&page=&page_size=
// @Summary List catalog books
// @Description Search the shared catalog by title or author with pagination
// @Tags catalog
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} httpx.SuccessResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page := httpx.ParsePage(r)
	books, total := h.svc.Search(r.URL.Query().Get("q"), page.Size, page.Offset())
	httpx.JSONSuccess(w, r, books, page.Meta(total))
}

// Get handles GET /books/{title}
// @Summary Get catalog book
// @Description Get a catalog book by title, matched case-insensitively
// @Tags catalog
// @Produce json
// @Param title path string true "Book title"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{title} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	if title == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Title is required", nil)
		return
	}

	b, err := h.svc.Get(title)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Create handles POST /books
// @Summary Create catalog book
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body createBookRequest true "Book to add"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadJSON(w, r)
		return
	}
	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.ValidationFailed(w, r, errs)
		return
	}

	b, err := h.svc.Create(req.Title, req.Author)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, b)
}

// Update handles PATCH /books/{title}
// @Summary Edit catalog book
// @Description Rename a catalog book or change its author. Empty fields keep the current value
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Param title path string true "Book title"
// @Param request body updateBookRequest true "Replacement fields"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{title} [patch]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateBookRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadJSON(w, r)
		return
	}
	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.ValidationFailed(w, r, errs)
		return
	}

	b, err := h.svc.Update(r.PathValue("title"), req.Title, req.Author)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Delete handles DELETE /books/{title}
// @Summary Delete catalog book
// @Description Remove every catalog book with the given title
// @Tags catalog
// @Security Bearer
// @Param title path string true "Book title"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{title} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.PathValue("title")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found in catalog", nil)
	case errors.Is(err, ErrInvalidBook):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
