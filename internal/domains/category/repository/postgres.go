package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mediadb-backend/internal/domains/category/model"
)

type postgresCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &postgresCategoryRepository{pool: pool}
}

func (r *postgresCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`

	err := r.pool.QueryRow(ctx, query, category.Name, category.Slug).Scan(&category.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrCategorySlugTaken
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *postgresCategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	query := `SELECT id, name, slug FROM categories WHERE slug = $1`

	category := &model.Category{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(&category.ID, &category.Name, &category.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (r *postgresCategoryRepository) List(ctx context.Context, search string, limit, offset int) ([]*model.Category, int, error) {
	query := `
		SELECT id, name, slug, COUNT(*) OVER() AS total
		FROM categories
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY slug
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*model.Category
	var total int
	for rows.Next() {
		category := &model.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, total, nil
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, slug string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}
	return nil
}
