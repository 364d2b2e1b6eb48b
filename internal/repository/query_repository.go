package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-query/internal/domain"
)

// PostgresArticleQueryRepository implements ArticleQueryRepository using
// PostgreSQL. Enrichment is a single query: author join, tag
// aggregation, the viewer's own favorite row, and the stored favorites
// counter. The counter is authoritative everywhere; no live aggregate
// over the ledger is consulted on reads.
type PostgresArticleQueryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleQueryRepository creates a new PostgresArticleQueryRepository.
func NewPostgresArticleQueryRepository(pool *pgxpool.Pool) *PostgresArticleQueryRepository {
	return &PostgresArticleQueryRepository{pool: pool}
}

// enrichedColumns is the shared projection of both read paths. The
// FILTER clause drops the NULL produced by the left join for articles
// with no tags, so an untagged article aggregates to an empty array.
const enrichedColumns = `
	a.id, a.slug, a.title, a.description, a.body, a.author_id,
	a.favorites_count, a.created_at, a.updated_at,
	u.username, u.bio, u.image,
	CASE WHEN vf.user_id IS NOT NULL THEN TRUE ELSE FALSE END AS favorited,
	COALESCE(ARRAY_AGG(att.tag ORDER BY att.tag) FILTER (WHERE att.tag IS NOT NULL), '{}') AS tags`

// List returns enriched articles newest-created-first. Tag and
// favorited filters are EXISTS predicates rather than join conditions
// so filtering never distorts the aggregated tag set.
func (r *PostgresArticleQueryRepository) List(ctx context.Context, filter domain.ArticleFilter, viewer *string, limit, offset int) ([]domain.ArticleView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+enrichedColumns+`
		FROM articles a
		JOIN users u ON a.author_id = u.id
		LEFT JOIN favorites vf ON vf.article_id = a.id
			AND vf.user_id = (SELECT id FROM users WHERE username = $4::text)
		LEFT JOIN article_tags att ON att.article_id = a.id
		WHERE ($1::text IS NULL OR EXISTS (
				SELECT 1 FROM article_tags ft
				WHERE ft.article_id = a.id AND ft.tag = $1::text))
		  AND ($2::text IS NULL OR u.username = $2::text)
		  AND ($3::text IS NULL OR EXISTS (
				SELECT 1 FROM favorites ff
				JOIN users fu ON ff.user_id = fu.id
				WHERE ff.article_id = a.id AND fu.username = $3::text))
		GROUP BY a.id, u.id, vf.user_id
		ORDER BY a.created_at DESC, a.id
		LIMIT $5 OFFSET $6
	`, filter.Tag, filter.Author, filter.Favorited, viewer, limit, offset)
	if err != nil {
		return nil, storageErr("list articles", err)
	}
	defer rows.Close()

	views := make([]domain.ArticleView, 0)
	for rows.Next() {
		view, err := scanArticleView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read articles", err)
	}
	return views, nil
}

// GetBySlug returns a single enriched article.
func (r *PostgresArticleQueryRepository) GetBySlug(ctx context.Context, slug string, viewer *string) (*domain.ArticleView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+enrichedColumns+`
		FROM articles a
		JOIN users u ON a.author_id = u.id
		LEFT JOIN favorites vf ON vf.article_id = a.id
			AND vf.user_id = (SELECT id FROM users WHERE username = $2::text)
		LEFT JOIN article_tags att ON att.article_id = a.id
		WHERE a.slug = $1
		GROUP BY a.id, u.id, vf.user_id
		LIMIT 1
	`, slug, viewer)
	if err != nil {
		return nil, storageErr("get enriched article", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, storageErr("read enriched article", err)
		}
		return nil, domain.NotFoundError("article", slug)
	}
	return scanArticleView(rows)
}

func scanArticleView(rows pgx.Rows) (*domain.ArticleView, error) {
	var v domain.ArticleView
	err := rows.Scan(
		&v.ID, &v.Slug, &v.Title, &v.Description, &v.Body, &v.AuthorID,
		&v.FavoritesCount, &v.CreatedAt, &v.UpdatedAt,
		&v.Author.Username, &v.Author.Bio, &v.Author.Image,
		&v.Favorited, &v.Tags,
	)
	if err != nil {
		return nil, storageErr("scan article view", err)
	}
	v.AuthorUsername = v.Author.Username
	if v.Tags == nil {
		v.Tags = []string{}
	}
	return &v, nil
}

// PostgresFeedRepository implements FeedRepository using PostgreSQL.
type PostgresFeedRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFeedRepository creates a new PostgresFeedRepository.
func NewPostgresFeedRepository(pool *pgxpool.Pool) *PostgresFeedRepository {
	return &PostgresFeedRepository{pool: pool}
}

// FeedFor returns articles authored by users the follower follows.
// Feed ordering is oldest-created-first, unlike List; the asymmetry is
// intentional product behavior. An unknown follower or one following
// nobody both yield an empty feed.
func (r *PostgresFeedRepository) FeedFor(ctx context.Context, followerUsername string, limit, offset int) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.slug, a.title, a.description, a.body, a.author_id,
		       u.username, a.favorites_count, a.created_at, a.updated_at
		FROM articles a
		JOIN users u ON a.author_id = u.id
		JOIN follows fl ON fl.following_id = a.author_id
		JOIN users fu ON fl.follower_id = fu.id
		WHERE fu.username = $1
		ORDER BY a.created_at ASC, a.id
		LIMIT $2 OFFSET $3
	`, followerUsername, limit, offset)
	if err != nil {
		return nil, storageErr("query feed", err)
	}
	defer rows.Close()

	feed := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Description, &a.Body, &a.AuthorID,
			&a.AuthorUsername, &a.FavoritesCount, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, storageErr("scan feed article", err)
		}
		feed = append(feed, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read feed", err)
	}
	return feed, nil
}
