package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-query/internal/domain"
)

// PostgresFavoriteRepository implements FavoriteRepository using
// PostgreSQL. The stored favorites_count on the article row is the
// single source of truth for counts; every mutation here moves it in
// the same transaction as the ledger row, conditioned on the ledger
// insert or delete having actually affected a row. That keeps the
// counter equal to the ledger under at-least-once retries and
// concurrent duplicate calls.
type PostgresFavoriteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFavoriteRepository creates a new PostgresFavoriteRepository.
func NewPostgresFavoriteRepository(pool *pgxpool.Pool) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{pool: pool}
}

// Add records that username favorited the article. Repeated adds by the
// same user leave the ledger and counter untouched.
func (r *PostgresFavoriteRepository) Add(ctx context.Context, username, slug string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, storageErr("begin add favorite", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userID, articleID, err := lockFavoriteTarget(ctx, tx, username, slug)
	if err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO favorites (user_id, article_id) VALUES ($1, $2)
		ON CONFLICT (user_id, article_id) DO NOTHING
	`, userID, articleID)
	if err != nil {
		// The user row is not locked, so a concurrent user deletion can
		// surface here as an FK violation.
		if isForeignKeyViolation(err) {
			return false, domain.NotFoundError("user", username)
		}
		return false, storageErr("insert favorite", err)
	}

	applied := tag.RowsAffected() == 1
	if applied {
		if _, err := tx.Exec(ctx, `
			UPDATE articles SET favorites_count = favorites_count + 1 WHERE id = $1
		`, articleID); err != nil {
			return false, storageErr("increment favorites count", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, storageErr("commit add favorite", err)
	}
	return applied, nil
}

// Remove deletes username's favorite of the article. Removing an absent
// favorite leaves the counter unchanged.
func (r *PostgresFavoriteRepository) Remove(ctx context.Context, username, slug string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, storageErr("begin remove favorite", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userID, articleID, err := lockFavoriteTarget(ctx, tx, username, slug)
	if err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND article_id = $2
	`, userID, articleID)
	if err != nil {
		return false, storageErr("delete favorite", err)
	}

	applied := tag.RowsAffected() == 1
	if applied {
		if _, err := tx.Exec(ctx, `
			UPDATE articles SET favorites_count = favorites_count - 1 WHERE id = $1
		`, articleID); err != nil {
			return false, storageErr("decrement favorites count", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, storageErr("commit remove favorite", err)
	}
	return applied, nil
}

// IsFavorited reports whether username has an active favorite for the
// article.
func (r *PostgresFavoriteRepository) IsFavorited(ctx context.Context, username, slug string) (bool, error) {
	var favorited bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM favorites f
			JOIN users u ON f.user_id = u.id
			JOIN articles a ON f.article_id = a.id
			WHERE u.username = $1 AND a.slug = $2
		)
	`, username, slug).Scan(&favorited)
	if err != nil {
		return false, storageErr("query favorited", err)
	}
	return favorited, nil
}

// CountFor reads the stored favorites counter for the article.
func (r *PostgresFavoriteRepository) CountFor(ctx context.Context, slug string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT favorites_count FROM articles WHERE slug = $1
	`, slug).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NotFoundError("article", slug)
		}
		return 0, storageErr("query favorites count", err)
	}
	return count, nil
}

// lockFavoriteTarget resolves the user and article, row-locking the
// article so concurrent adds and removes of the same favorite serialize
// on the counter.
func lockFavoriteTarget(ctx context.Context, tx pgx.Tx, username, slug string) (userID, articleID string, err error) {
	err = tx.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", domain.NotFoundError("user", username)
		}
		return "", "", storageErr("look up user", err)
	}

	err = tx.QueryRow(ctx, `SELECT id FROM articles WHERE slug = $1 FOR UPDATE`, slug).Scan(&articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", domain.NotFoundError("article", slug)
		}
		return "", "", storageErr("look up article", err)
	}
	return userID, articleID, nil
}
