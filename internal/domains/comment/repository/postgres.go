package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mediadb-backend/internal/domains/comment/model"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (text, author_id, review_id)
		VALUES ($1, $2, $3)
		RETURNING id, pub_date
	`

	err := r.pool.QueryRow(ctx, query,
		comment.Text,
		comment.AuthorID,
		comment.ReviewID,
	).Scan(&comment.ID, &comment.PubDate)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

const commentSelect = `
	SELECT c.id, c.text, u.username, c.author_id, c.review_id, c.pub_date
	FROM comments c
	JOIN users u ON u.id = c.author_id
`

func scanComment(row pgx.Row, extra ...interface{}) (*model.Comment, error) {
	comment := &model.Comment{}
	dest := []interface{}{
		&comment.ID,
		&comment.Text,
		&comment.Author,
		&comment.AuthorID,
		&comment.ReviewID,
		&comment.PubDate,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to scan comment: %w", err)
	}
	return comment, nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx, commentSelect+`WHERE c.id = $1`, id))
}

func (r *postgresCommentRepository) ListByReview(ctx context.Context, reviewID int64, limit, offset int) ([]*model.Comment, int, error) {
	query := `
		SELECT c.id, c.text, u.username, c.author_id, c.review_id, c.pub_date,
		       COUNT(*) OVER() AS total
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.review_id = $1
		ORDER BY c.pub_date DESC, c.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, reviewID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	var total int
	for rows.Next() {
		comment, err := scanComment(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, total, nil
}

func (r *postgresCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE comments SET text = $2 WHERE id = $1`,
		comment.ID, comment.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
