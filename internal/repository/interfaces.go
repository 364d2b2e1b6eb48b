package repository

import (
	"context"
	"time"

	"article-query/internal/domain"
)

// ArticleRepository defines CRUD over article records. It owns slug
// uniqueness and author attribution; reads here are thin (no tag or
// favorite enrichment).
type ArticleRepository interface {
	Create(ctx context.Context, authorUsername, slug, title string, description *string, body string) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Update(ctx context.Context, slug, authorUsername string, changes domain.ArticleChanges) (time.Time, error)
	Delete(ctx context.Context, slug, authorUsername string) error
}

// TagRepository maintains the set of known tags and article-to-tag
// associations.
type TagRepository interface {
	// Attach links a tag to an article, creating the tag if it does not
	// exist yet. Attaching an already-present tag is a no-op.
	Attach(ctx context.Context, slug, tag string) error
	// TagsFor returns the article's tags sorted ascending; an article
	// with no tags yields an empty slice.
	TagsFor(ctx context.Context, slug string) ([]string, error)
	// All returns every known tag.
	All(ctx context.Context) ([]string, error)
}

// FavoriteRepository is the authoritative store of user-to-article
// favorites and keeper of the denormalized favorites counter.
type FavoriteRepository interface {
	// Add records the favorite and increments the article's counter in
	// one transaction. A repeated add by the same user is a no-op;
	// applied reports whether the counter moved.
	Add(ctx context.Context, username, slug string) (applied bool, err error)
	// Remove deletes the favorite and decrements the counter in one
	// transaction. Removing an absent favorite is a no-op.
	Remove(ctx context.Context, username, slug string) (applied bool, err error)
	IsFavorited(ctx context.Context, username, slug string) (bool, error)
	// CountFor reads the stored counter for the article.
	CountFor(ctx context.Context, slug string) (int, error)
}

// ArticleQueryRepository produces enriched, filtered, paginated,
// personalized article views.
type ArticleQueryRepository interface {
	// List returns articles newest-created-first. Filter clauses combine
	// conjunctively; an unset clause imposes no restriction. A nil viewer
	// yields favorited=false on every row.
	List(ctx context.Context, filter domain.ArticleFilter, viewer *string, limit, offset int) ([]domain.ArticleView, error)
	GetBySlug(ctx context.Context, slug string, viewer *string) (*domain.ArticleView, error)
}

// FeedRepository builds per-user content feeds from the follow graph.
type FeedRepository interface {
	// FeedFor returns articles authored by users the follower follows,
	// oldest-created-first. No enrichment beyond the author username.
	FeedFor(ctx context.Context, followerUsername string, limit, offset int) ([]domain.Article, error)
}
