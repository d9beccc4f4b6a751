package ingest

import (
	"net/http"

	"booktracker/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type importReq struct {
	Subjects []string `json:"subjects" validate:"omitempty,max=20,dive,required,max=100"`
	BooksMax int      `json:"books_max" validate:"omitempty,gte=1,lte=1000"`
}

// Import handles POST /books/import
// @Summary Import catalog books from Open Library
// @Description Search Open Library by subject and add titles missing from the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /books/import [post]
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importReq
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.BadJSON(w, r)
			return
		}
		if errs := httpx.ValidateStruct(req); len(errs) > 0 {
			httpx.ValidationFailed(w, r, errs)
			return
		}
	}

	cfg := h.svc.cfg
	if len(req.Subjects) > 0 {
		cfg.Subjects = req.Subjects
	}
	if req.BooksMax > 0 {
		cfg.BooksMax = req.BooksMax
	}

	run, err := h.svc.RunWith(r.Context(), cfg)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadGateway, "INGEST_FAILED", run.Error, nil)
		return
	}
	httpx.JSONSuccess(w, r, run, nil)
}
