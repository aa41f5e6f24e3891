package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/titles"+query, nil)
	return ParsePagination(c)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Pagination
	}{
		{"defaults", "", Pagination{Page: 1, Size: DefaultPageSize}},
		{"explicit", "?page=3&size=10", Pagination{Page: 3, Size: 10}},
		{"zero page clamps", "?page=0", Pagination{Page: 1, Size: DefaultPageSize}},
		{"negative size clamps", "?size=-5", Pagination{Page: 1, Size: DefaultPageSize}},
		{"oversized clamps", "?size=5000", Pagination{Page: 1, Size: MaxPageSize}},
		{"garbage falls back", "?page=abc&size=xyz", Pagination{Page: 1, Size: DefaultPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginationFor(t, tt.query))
		})
	}
}

func TestLimitOffset(t *testing.T) {
	p := Pagination{Page: 3, Size: 10}
	assert.Equal(t, 10, p.Limit())
	assert.Equal(t, 20, p.Offset())

	first := Pagination{Page: 1, Size: 20}
	assert.Equal(t, 0, first.Offset())
}
