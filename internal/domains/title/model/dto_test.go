package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateTitleRequestValidate(t *testing.T) {
	valid := CreateTitleRequest{
		Name:     "Some Film",
		Year:     2000,
		Category: "movies",
		Genres:   []string{"drama"},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateTitleRequest)
	}{
		{"missing name", func(r *CreateTitleRequest) { r.Name = "" }},
		{"missing year", func(r *CreateTitleRequest) { r.Year = 0 }},
		{"future year", func(r *CreateTitleRequest) { r.Year = time.Now().Year() + 1 }},
		{"missing category", func(r *CreateTitleRequest) { r.Category = "" }},
		{"bad category slug", func(r *CreateTitleRequest) { r.Category = "no spaces!" }},
		{"no genres", func(r *CreateTitleRequest) { r.Genres = nil }},
		{"bad genre slug", func(r *CreateTitleRequest) { r.Genres = []string{"drama", "bad slug"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}

	// The current year is not "in the future".
	current := valid
	current.Year = time.Now().Year()
	assert.NoError(t, current.Validate())
}

func TestUpdateTitleRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateTitleRequest{}.Validate())

	name := "Renamed"
	assert.NoError(t, UpdateTitleRequest{Name: &name}.Validate())

	empty := ""
	assert.Error(t, UpdateTitleRequest{Name: &empty}.Validate())

	future := time.Now().Year() + 1
	assert.Error(t, UpdateTitleRequest{Year: &future}.Validate())

	badSlug := "no spaces!"
	assert.Error(t, UpdateTitleRequest{Category: &badSlug}.Validate())

	emptyGenres := []string{}
	assert.Error(t, UpdateTitleRequest{Genres: &emptyGenres}.Validate())

	genres := []string{"drama"}
	assert.NoError(t, UpdateTitleRequest{Genres: &genres}.Validate())
}
