package model

import (
	"fmt"

	categorymodel "mediadb-backend/internal/domains/category/model"
	genremodel "mediadb-backend/internal/domains/genre/model"
)

// Title is a reviewable work in the catalog.
type Title struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Year        int     `json:"year"`
	Description *string `json:"description"`

	// Rating is the arithmetic mean of all review scores, nil when the title
	// has no reviews yet.
	Rating *float64 `json:"rating"`

	Category *categorymodel.Category `json:"category"`
	Genres   []genremodel.Genre      `json:"genres"`
}

// Filter restricts title listings. Zero-valued fields are no-ops; provided
// fields are ANDed together.
type Filter struct {
	// Name is a case-insensitive substring match on the title name.
	Name string
	// Category is a case-insensitive substring match on the category name.
	Category string
	// Genres matches titles carrying ANY of the given genre slugs or names.
	Genres []string
	// Year is an exact match.
	Year *int
}

// CacheKey is the cache key of a title-with-rating read. Review mutations
// must invalidate it because they change the aggregate.
func CacheKey(id int64) string {
	return fmt.Sprintf("title:%d", id)
}
