package service

import (
	"context"

	"article-query/internal/domain"
)

// ArticleServiceInterface is the article query and mutation surface
// consumed by the HTTP layer. Used for dependency injection and mocking
// in tests.
type ArticleServiceInterface interface {
	// List returns enriched articles, newest first, honoring the filter.
	List(ctx context.Context, filter domain.ArticleFilter, viewer *string, limit, offset int) ([]domain.ArticleView, error)
	// Get returns one enriched article.
	Get(ctx context.Context, slug string, viewer *string) (*domain.ArticleView, error)
	// Feed returns articles by followed authors, oldest first.
	Feed(ctx context.Context, followerUsername string, limit, offset int) ([]domain.Article, error)
	// Create inserts an article and attaches its initial tags.
	Create(ctx context.Context, authorUsername, slug, title string, description *string, body string, tags []string) (*domain.ArticleView, error)
	// Update applies changes on behalf of the author.
	Update(ctx context.Context, slug, authorUsername string, changes domain.ArticleChanges) (*domain.ArticleView, error)
	// Delete removes an article on behalf of the author.
	Delete(ctx context.Context, slug, authorUsername string) error
	// Favorite records a favorite and returns the refreshed view.
	Favorite(ctx context.Context, username, slug string) (*domain.ArticleView, error)
	// Unfavorite removes a favorite and returns the refreshed view.
	Unfavorite(ctx context.Context, username, slug string) (*domain.ArticleView, error)
	// Tags returns every known tag.
	Tags(ctx context.Context) ([]string, error)
	// TagsFor returns one article's tags, sorted ascending.
	TagsFor(ctx context.Context, slug string) ([]string, error)
}
