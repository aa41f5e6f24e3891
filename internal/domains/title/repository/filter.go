package repository

import (
	"fmt"
	"strings"

	"mediadb-backend/internal/domains/title/model"
)

// buildTitleFilter renders the optional title filters into a WHERE clause
// over the aliased tables t (titles) and c (categories). All provided
// filters are ANDed; an empty filter yields an empty clause.
func buildTitleFilter(f model.Filter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.Name != "" {
		args = append(args, f.Name)
		clauses = append(clauses, fmt.Sprintf("t.name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if f.Category != "" {
		args = append(args, f.Category)
		clauses = append(clauses, fmt.Sprintf("c.name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if f.Year != nil {
		args = append(args, *f.Year)
		clauses = append(clauses, fmt.Sprintf("t.year = $%d", len(args)))
	}

	if len(f.Genres) > 0 {
		// ANY-of semantics: a title matches when it carries at least one of
		// the requested genres, by slug or by name.
		args = append(args, f.Genres)
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM title_genres tg JOIN genres g ON g.id = tg.genre_id "+
				"WHERE tg.title_id = t.id AND (g.slug = ANY($%d) OR g.name = ANY($%d)))", n, n))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// ParseGenreList splits the comma-separated ?genre= query value into
// trimmed, non-empty entries.
func ParseGenreList(raw string) []string {
	if raw == "" {
		return nil
	}

	var genres []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			genres = append(genres, trimmed)
		}
	}
	return genres
}
