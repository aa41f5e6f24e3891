package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination carries the page/size query pair of a list request.
type Pagination struct {
	Page int
	Size int
}

// Limit returns the SQL LIMIT for this page.
func (p Pagination) Limit() int {
	return p.Size
}

// Offset returns the SQL OFFSET for this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// ParsePagination reads ?page= and ?size=, clamping to sane bounds.
// Malformed values fall back to the defaults.
func ParsePagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Pagination{Page: page, Size: size}
}
