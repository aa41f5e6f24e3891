package database

import (
	"context"
	"fmt"

	"mediadb-backend/pkg/logger"
)

// schema is applied at startup. Every statement is idempotent so restarts
// against an initialized database are safe. The constraints here back the
// sentinel errors the repositories translate: the unique indexes on
// username, email, the slugs and (author_id, title_id) surface as 23505.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                BIGSERIAL PRIMARY KEY,
		username          TEXT NOT NULL,
		email             TEXT NOT NULL,
		first_name        TEXT,
		last_name         TEXT,
		bio               TEXT,
		role              TEXT NOT NULL DEFAULT 'user',
		is_superuser      BOOLEAN NOT NULL DEFAULT FALSE,
		confirmation_code TEXT NOT NULL DEFAULT '',
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		CONSTRAINT categories_slug_key UNIQUE (slug)
	)`,

	`CREATE TABLE IF NOT EXISTS genres (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		CONSTRAINT genres_slug_key UNIQUE (slug)
	)`,

	// Removing a category detaches its titles instead of deleting them.
	`CREATE TABLE IF NOT EXISTS titles (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		year        INTEGER NOT NULL,
		description TEXT,
		category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL
	)`,

	`CREATE TABLE IF NOT EXISTS title_genres (
		title_id BIGINT NOT NULL REFERENCES titles(id) ON DELETE CASCADE,
		genre_id BIGINT NOT NULL REFERENCES genres(id) ON DELETE CASCADE,
		PRIMARY KEY (title_id, genre_id)
	)`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id        BIGSERIAL PRIMARY KEY,
		text      TEXT NOT NULL,
		score     INTEGER NOT NULL CHECK (score BETWEEN 1 AND 10),
		author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title_id  BIGINT NOT NULL REFERENCES titles(id) ON DELETE CASCADE,
		pub_date  TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT reviews_author_id_title_id_key UNIQUE (author_id, title_id)
	)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id        BIGSERIAL PRIMARY KEY,
		text      TEXT NOT NULL,
		author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		review_id BIGINT NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
		pub_date  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_titles_category_id ON titles(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_titles_year ON titles(year)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_title_id ON reviews(title_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_review_id ON comments(review_id)`,
}

// Migrate runs the schema statements in order.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	logger.Info("Database schema is up to date", nil)
	return nil
}
