package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-query/internal/domain"
)

// PostgresTagRepository implements TagRepository using PostgreSQL.
type PostgresTagRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTagRepository creates a new PostgresTagRepository.
func NewPostgresTagRepository(pool *pgxpool.Pool) *PostgresTagRepository {
	return &PostgresTagRepository{pool: pool}
}

// Attach links tag to the article identified by slug. The tag row is
// created implicitly on first use. Both inserts are upserts, so an
// already-attached tag is a deliberate no-op rather than an error; a
// missing article is ErrNotFound.
func (r *PostgresTagRepository) Attach(ctx context.Context, slug, tag string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storageErr("begin attach tag", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var articleID string
	err = tx.QueryRow(ctx, `SELECT id FROM articles WHERE slug = $1`, slug).Scan(&articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFoundError("article", slug)
		}
		return storageErr("look up article", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO tags (tag) VALUES ($1)
		ON CONFLICT (tag) DO NOTHING
	`, tag); err != nil {
		return storageErr("upsert tag", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO article_tags (article_id, tag) VALUES ($1, $2)
		ON CONFLICT (article_id, tag) DO NOTHING
	`, articleID, tag); err != nil {
		// The article can be deleted between the lookup above and this
		// insert; the FK violation is the delete winning the race.
		if isForeignKeyViolation(err) {
			return domain.NotFoundError("article", slug)
		}
		return storageErr("attach tag", err)
	}

	return tx.Commit(ctx)
}

// TagsFor returns the article's tags sorted ascending.
func (r *PostgresTagRepository) TagsFor(ctx context.Context, slug string) ([]string, error) {
	var articleID string
	err := r.pool.QueryRow(ctx, `SELECT id FROM articles WHERE slug = $1`, slug).Scan(&articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("article", slug)
		}
		return nil, storageErr("look up article", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT tag FROM article_tags
		WHERE article_id = $1
		ORDER BY tag
	`, articleID)
	if err != nil {
		return nil, storageErr("query article tags", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// All returns every known tag sorted ascending.
func (r *PostgresTagRepository) All(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT tag FROM tags ORDER BY tag`)
	if err != nil {
		return nil, storageErr("query tags", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

func scanTags(rows pgx.Rows) ([]string, error) {
	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, storageErr("scan tag", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read tags", err)
	}
	return tags, nil
}
