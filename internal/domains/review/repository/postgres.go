package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mediadb-backend/internal/domains/review/model"
)

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (text, score, author_id, title_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, pub_date
	`

	err := r.pool.QueryRow(ctx, query,
		review.Text,
		review.Score,
		review.AuthorID,
		review.TitleID,
	).Scan(&review.ID, &review.PubDate)

	if err != nil {
		// The composite unique constraint is the authoritative duplicate
		// guard; the service-level pre-check only improves the message.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// =====================================================
// READS
// =====================================================

const reviewSelect = `
	SELECT r.id, r.text, r.score, u.username, r.author_id, r.title_id, r.pub_date
	FROM reviews r
	JOIN users u ON u.id = r.author_id
`

func scanReview(row pgx.Row, extra ...interface{}) (*model.Review, error) {
	review := &model.Review{}
	dest := []interface{}{
		&review.ID,
		&review.Text,
		&review.Score,
		&review.Author,
		&review.AuthorID,
		&review.TitleID,
		&review.PubDate,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to scan review: %w", err)
	}
	return review, nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	return scanReview(r.pool.QueryRow(ctx, reviewSelect+`WHERE r.id = $1`, id))
}

func (r *postgresReviewRepository) ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]*model.Review, int, error) {
	query := `
		SELECT r.id, r.text, r.score, u.username, r.author_id, r.title_id, r.pub_date,
		       COUNT(*) OVER() AS total
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.title_id = $1
		ORDER BY r.pub_date DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, titleID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*model.Review
	var total int
	for rows.Next() {
		review, err := scanReview(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, total, nil
}

func (r *postgresReviewRepository) Exists(ctx context.Context, authorID, titleID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE author_id = $1 AND title_id = $2)`,
		authorID, titleID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}

// =====================================================
// UPDATE / DELETE
// =====================================================

func (r *postgresReviewRepository) Update(ctx context.Context, review *model.Review) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE reviews SET text = $2, score = $3 WHERE id = $1`,
		review.ID, review.Text, review.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}
