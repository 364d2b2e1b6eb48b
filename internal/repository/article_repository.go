package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-query/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article attributed to authorUsername. The author
// must exist and the slug must be free.
func (r *PostgresArticleRepository) Create(ctx context.Context, authorUsername, slug, title string, description *string, body string) (*domain.Article, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, storageErr("begin create article", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var authorID string
	err = tx.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, authorUsername).Scan(&authorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("user", authorUsername)
		}
		return nil, storageErr("look up author", err)
	}

	article := &domain.Article{
		ID:             uuid.New().String(),
		Slug:           slug,
		Title:          title,
		Description:    description,
		Body:           body,
		AuthorID:       authorID,
		AuthorUsername: authorUsername,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO articles (id, slug, title, description, body, author_id, favorites_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW(), NOW())
		RETURNING created_at, updated_at
	`, article.ID, slug, title, description, body, authorID).Scan(&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ConflictError("article", slug)
		}
		return nil, storageErr("insert article", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageErr("commit create article", err)
	}

	return article, nil
}

// GetBySlug returns the bare article record without tag or favorite
// enrichment.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
		SELECT a.id, a.slug, a.title, a.description, a.body, a.author_id, u.username,
		       a.favorites_count, a.created_at, a.updated_at
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.slug = $1
	`, slug).Scan(&a.ID, &a.Slug, &a.Title, &a.Description, &a.Body, &a.AuthorID,
		&a.AuthorUsername, &a.FavoritesCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError("article", slug)
		}
		return nil, storageErr("get article by slug", err)
	}
	return &a, nil
}

// Update applies the set fields of changes to the article. Only the
// author may update; a missing article and a foreign article are
// distinct failures so callers can tell them apart.
func (r *PostgresArticleRepository) Update(ctx context.Context, slug, authorUsername string, changes domain.ArticleChanges) (time.Time, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return time.Time{}, storageErr("begin update article", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	articleID, err := lockOwnedArticle(ctx, tx, slug, authorUsername)
	if err != nil {
		return time.Time{}, err
	}

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{articleID}
	argNum := 2
	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}
	if changes.Slug != nil {
		appendSet("slug", *changes.Slug)
	}
	if changes.Title != nil {
		appendSet("title", *changes.Title)
	}
	if changes.Description != nil {
		appendSet("description", *changes.Description)
	}
	if changes.Body != nil {
		appendSet("body", *changes.Body)
	}

	query := fmt.Sprintf(`UPDATE articles SET %s WHERE id = $1 RETURNING updated_at`, strings.Join(sets, ", "))

	var updatedAt time.Time
	if err := tx.QueryRow(ctx, query, args...).Scan(&updatedAt); err != nil {
		if isUniqueViolation(err) {
			return time.Time{}, domain.ConflictError("article", *changes.Slug)
		}
		return time.Time{}, storageErr("update article", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return time.Time{}, storageErr("commit update article", err)
	}
	return updatedAt, nil
}

// Delete removes the article. Tag associations and favorites go with it
// through the schema's ON DELETE CASCADE, inside the same transaction.
func (r *PostgresArticleRepository) Delete(ctx context.Context, slug, authorUsername string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storageErr("begin delete article", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	articleID, err := lockOwnedArticle(ctx, tx, slug, authorUsername)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, articleID); err != nil {
		return storageErr("delete article", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storageErr("commit delete article", err)
	}
	return nil
}

// lockOwnedArticle loads and row-locks the article, verifying ownership.
// Returns ErrNotFound when the slug is absent and ErrForbidden when the
// acting user is not the author.
func lockOwnedArticle(ctx context.Context, tx pgx.Tx, slug, authorUsername string) (string, error) {
	var articleID, ownerUsername string
	err := tx.QueryRow(ctx, `
		SELECT a.id, u.username
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.slug = $1
		FOR UPDATE OF a
	`, slug).Scan(&articleID, &ownerUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NotFoundError("article", slug)
		}
		return "", storageErr("lock article", err)
	}
	if ownerUsername != authorUsername {
		return "", domain.ForbiddenError("article", slug)
	}
	return articleID, nil
}
