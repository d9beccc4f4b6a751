package httpx

import (
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page is a 1-based page window parsed from ?page= and ?page_size=.
type Page struct {
	Number int
	Size   int
}

func ParsePage(r *http.Request) Page {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return Page{Number: page, Size: pageSize}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Meta is the pagination metadata attached to list responses.
func (p Page) Meta(total int) map[string]any {
	return map[string]any{
		"page":        p.Number,
		"page_size":   p.Size,
		"total":       total,
		"total_pages": (total + p.Size - 1) / p.Size,
	}
}
