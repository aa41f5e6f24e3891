package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mediadb-backend/internal/domains/genre/model"
)

type postgresGenreRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresGenreRepository(pool *pgxpool.Pool) GenreRepository {
	return &postgresGenreRepository{pool: pool}
}

func (r *postgresGenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	query := `INSERT INTO genres (name, slug) VALUES ($1, $2) RETURNING id`

	err := r.pool.QueryRow(ctx, query, genre.Name, genre.Slug).Scan(&genre.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrGenreSlugTaken
		}
		return fmt.Errorf("failed to create genre: %w", err)
	}
	return nil
}

func (r *postgresGenreRepository) GetBySlug(ctx context.Context, slug string) (*model.Genre, error) {
	query := `SELECT id, name, slug FROM genres WHERE slug = $1`

	genre := &model.Genre{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(&genre.ID, &genre.Name, &genre.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return genre, nil
}

func (r *postgresGenreRepository) List(ctx context.Context, search string, limit, offset int) ([]*model.Genre, int, error) {
	query := `
		SELECT id, name, slug, COUNT(*) OVER() AS total
		FROM genres
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY slug
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	var genres []*model.Genre
	var total int
	for rows.Next() {
		genre := &model.Genre{}
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Slug, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list genres: %w", err)
	}

	return genres, total, nil
}

func (r *postgresGenreRepository) Delete(ctx context.Context, slug string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrGenreNotFound
	}
	return nil
}
