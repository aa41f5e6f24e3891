package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mediadb-backend/internal/domains/title/model"
)

func TestBuildTitleFilterEmpty(t *testing.T) {
	where, args := buildTitleFilter(model.Filter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildTitleFilterName(t *testing.T) {
	where, args := buildTitleFilter(model.Filter{Name: "matrix"})
	assert.Equal(t, "WHERE t.name ILIKE '%' || $1 || '%'", where)
	assert.Equal(t, []interface{}{"matrix"}, args)
}

func TestBuildTitleFilterCategory(t *testing.T) {
	where, args := buildTitleFilter(model.Filter{Category: "movie"})
	assert.Equal(t, "WHERE c.name ILIKE '%' || $1 || '%'", where)
	assert.Equal(t, []interface{}{"movie"}, args)
}

func TestBuildTitleFilterYear(t *testing.T) {
	year := 1999
	where, args := buildTitleFilter(model.Filter{Year: &year})
	assert.Equal(t, "WHERE t.year = $1", where)
	assert.Equal(t, []interface{}{1999}, args)
}

func TestBuildTitleFilterGenres(t *testing.T) {
	where, args := buildTitleFilter(model.Filter{Genres: []string{"drama", "comedy"}})
	assert.Contains(t, where, "g.slug = ANY($1)")
	assert.Contains(t, where, "g.name = ANY($1)")
	assert.Equal(t, []interface{}{[]string{"drama", "comedy"}}, args)
}

func TestBuildTitleFilterCombined(t *testing.T) {
	year := 2001
	where, args := buildTitleFilter(model.Filter{
		Name:     "ring",
		Category: "movie",
		Year:     &year,
		Genres:   []string{"fantasy"},
	})

	assert.Equal(t,
		"WHERE t.name ILIKE '%' || $1 || '%' AND c.name ILIKE '%' || $2 || '%' "+
			"AND t.year = $3 AND EXISTS (SELECT 1 FROM title_genres tg "+
			"JOIN genres g ON g.id = tg.genre_id WHERE tg.title_id = t.id "+
			"AND (g.slug = ANY($4) OR g.name = ANY($4)))",
		where)
	assert.Len(t, args, 4)
	assert.Equal(t, "ring", args[0])
	assert.Equal(t, "movie", args[1])
	assert.Equal(t, 2001, args[2])
}

func TestParseGenreList(t *testing.T) {
	assert.Nil(t, ParseGenreList(""))
	assert.Equal(t, []string{"drama"}, ParseGenreList("drama"))
	assert.Equal(t, []string{"drama", "comedy"}, ParseGenreList("drama,comedy"))
	assert.Equal(t, []string{"drama", "comedy"}, ParseGenreList(" drama , comedy ,"))
}
