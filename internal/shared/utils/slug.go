package utils

import "regexp"

// SlugRegex is the URL-safe identifier shape shared by category and genre
// slugs.
var SlugRegex = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

const (
	MinSlugLength = 1
	MaxSlugLength = 50
)
