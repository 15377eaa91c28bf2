// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
const PageSize = 25

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Offset returns the number of rows to skip for page.
func Offset(page, size int) int64 {
	if page < 1 {
		page = 1
	}
	return int64((page - 1) * size)
}

// Window describes one page of an offset-paged list for display.
type Window struct {
	Page       int
	TotalPages int
	Total      int64
	RangeStart int // 1-based index of the first row shown (0 if none)
	RangeEnd   int // 1-based index of the last row shown (0 if none)
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// Compute builds the Window for page given how many rows it shows and the
// total row count.
func Compute(page, size, shown int, total int64) Window {
	if page < 1 {
		page = 1
	}
	totalPages := 1
	if size > 0 && total > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	w := Window{
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
	}
	if w.PrevPage < 1 {
		w.PrevPage = 1
	}
	if shown > 0 {
		w.RangeStart = int(Offset(page, size)) + 1
		w.RangeEnd = w.RangeStart + shown - 1
	}
	return w
}
