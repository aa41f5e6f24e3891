package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	categorymodel "mediadb-backend/internal/domains/category/model"
	genremodel "mediadb-backend/internal/domains/genre/model"
	"mediadb-backend/internal/domains/title/model"
)

type postgresTitleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTitleRepository(pool *pgxpool.Pool) TitleRepository {
	return &postgresTitleRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresTitleRepository) Create(ctx context.Context, title *model.Title, genreIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var categoryID *int64
	if title.Category != nil {
		categoryID = &title.Category.ID
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO titles (name, year, description, category_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		title.Name, title.Year, title.Description, categoryID,
	).Scan(&title.ID)
	if err != nil {
		return fmt.Errorf("failed to create title: %w", err)
	}

	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			title.ID, genreID,
		); err != nil {
			return fmt.Errorf("failed to attach genre: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit title: %w", err)
	}
	return nil
}

// =====================================================
// READS (joined with the review aggregate)
// =====================================================

const titleAggregateSelect = `
	SELECT t.id, t.name, t.year, t.description,
	       c.id, c.name, c.slug,
	       AVG(r.score)::float8 AS rating
`

const titleAggregateFrom = `
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id
	LEFT JOIN reviews r ON r.title_id = t.id
`

const titleAggregateGroup = `GROUP BY t.id, c.id`

func scanTitleAggregate(row pgx.Row, extra ...interface{}) (*model.Title, error) {
	title := &model.Title{}
	var categoryID *int64
	var categoryName, categorySlug *string

	dest := []interface{}{
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&categoryID,
		&categoryName,
		&categorySlug,
		&title.Rating,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to scan title: %w", err)
	}

	if categoryID != nil {
		title.Category = &categorymodel.Category{
			ID:   *categoryID,
			Name: *categoryName,
			Slug: *categorySlug,
		}
	}
	title.Genres = []genremodel.Genre{}
	return title, nil
}

func (r *postgresTitleRepository) GetByID(ctx context.Context, id int64) (*model.Title, error) {
	query := titleAggregateSelect + titleAggregateFrom + `WHERE t.id = $1 ` + titleAggregateGroup

	title, err := scanTitleAggregate(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	genres, err := r.loadGenres(ctx, []int64{title.ID})
	if err != nil {
		return nil, err
	}
	if g, ok := genres[title.ID]; ok {
		title.Genres = g
	}
	return title, nil
}

func (r *postgresTitleRepository) List(ctx context.Context, filter model.Filter, limit, offset int) ([]*model.Title, int, error) {
	where, args := buildTitleFilter(filter)

	query := fmt.Sprintf(
		`%s, COUNT(*) OVER() AS total %s %s %s ORDER BY t.id LIMIT $%d OFFSET $%d`,
		titleAggregateSelect, titleAggregateFrom, where, titleAggregateGroup,
		len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list titles: %w", err)
	}
	defer rows.Close()

	var titles []*model.Title
	var titleIDs []int64
	var total int
	for rows.Next() {
		title, err := scanTitleAggregate(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		titles = append(titles, title)
		titleIDs = append(titleIDs, title.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list titles: %w", err)
	}

	genres, err := r.loadGenres(ctx, titleIDs)
	if err != nil {
		return nil, 0, err
	}
	for _, title := range titles {
		if g, ok := genres[title.ID]; ok {
			title.Genres = g
		}
	}

	return titles, total, nil
}

// loadGenres fetches the genre sets of the given titles in one query.
func (r *postgresTitleRepository) loadGenres(ctx context.Context, titleIDs []int64) (map[int64][]genremodel.Genre, error) {
	if len(titleIDs) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT tg.title_id, g.id, g.name, g.slug
		FROM title_genres tg
		JOIN genres g ON g.id = tg.genre_id
		WHERE tg.title_id = ANY($1)
		ORDER BY g.slug
	`, titleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]genremodel.Genre)
	for rows.Next() {
		var titleID int64
		var genre genremodel.Genre
		if err := rows.Scan(&titleID, &genre.ID, &genre.Name, &genre.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		result[titleID] = append(result[titleID], genre)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}

	return result, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresTitleRepository) Update(ctx context.Context, title *model.Title, genreIDs []int64, replaceGenres bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var categoryID *int64
	if title.Category != nil {
		categoryID = &title.Category.ID
	}

	result, err := tx.Exec(ctx,
		`UPDATE titles SET name = $2, year = $3, description = $4, category_id = $5 WHERE id = $1`,
		title.ID, title.Name, title.Year, title.Description, categoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update title: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrTitleNotFound
	}

	if replaceGenres {
		if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, title.ID); err != nil {
			return fmt.Errorf("failed to detach genres: %w", err)
		}
		for _, genreID := range genreIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
				title.ID, genreID,
			); err != nil {
				return fmt.Errorf("failed to attach genre: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit title update: %w", err)
	}
	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresTitleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete title: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrTitleNotFound
	}
	return nil
}
