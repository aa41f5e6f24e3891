package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCategoryRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateCategoryRequest
		wantErr bool
	}{
		{"valid", CreateCategoryRequest{Name: "Movies", Slug: "movies"}, false},
		{"valid with hyphen and underscore", CreateCategoryRequest{Name: "TV Shows", Slug: "tv-shows_2"}, false},
		{"missing name", CreateCategoryRequest{Slug: "movies"}, true},
		{"missing slug", CreateCategoryRequest{Name: "Movies"}, true},
		{"slug with space", CreateCategoryRequest{Name: "Movies", Slug: "mov ies"}, true},
		{"slug with unicode", CreateCategoryRequest{Name: "Movies", Slug: "фильмы"}, true},
		{"slug too long", CreateCategoryRequest{Name: "Movies", Slug: strings.Repeat("a", 51)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
