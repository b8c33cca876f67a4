package utils

import (
	"strconv"

	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/gin-gonic/gin"
)

// PaginationParams selects one page of a listing. The zero value selects
// every row.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// AllRows lists without a limit. The operator CLI and option loaders use it.
var AllRows = PaginationParams{}

// PaginationResponse is the pagination block of list responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// NewPaginationParams clamps page and limit to the accepted ranges. A limit
// outside them falls back to the default page size.
func NewPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}
	return PaginationParams{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// GetPaginationParams reads ?page= and ?limit=. Unparsable values count as
// missing.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return NewPaginationParams(page, limit)
}

// Bounded reports whether p limits the number of rows.
func (p PaginationParams) Bounded() bool {
	return p.Limit > 0
}

// Response describes p for a listing with total matching rows.
func (p PaginationParams) Response(total int64) PaginationResponse {
	resp := PaginationResponse{Page: p.Page, Limit: p.Limit, Total: total}
	if !p.Bounded() {
		resp.Page = 1
		resp.Limit = int(total)
		if total > 0 {
			resp.TotalPages = 1
		}
		return resp
	}
	resp.TotalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	resp.HasNext = p.Page < resp.TotalPages
	return resp
}
