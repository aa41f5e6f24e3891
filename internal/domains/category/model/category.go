package model

// Category groups titles ("Movies", "Books", ...). A title references at
// most one category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
