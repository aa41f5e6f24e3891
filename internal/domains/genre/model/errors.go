package model

import "errors"

var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrGenreSlugTaken = errors.New("genre slug already exists")
)
