package service

import (
	"context"
	"log/slog"

	"article-query/internal/cache"
	"article-query/internal/domain"
	"article-query/internal/logger"
	"article-query/internal/metrics"
	"article-query/internal/repository"
)

// ArticleService composes the article repositories behind one surface
// and owns the read-through cache. Storage is authoritative; the cache
// only ever changes how fast an answer arrives, not what it is.
type ArticleService struct {
	articles  repository.ArticleRepository
	tags      repository.TagRepository
	favorites repository.FavoriteRepository
	queries   repository.ArticleQueryRepository
	feeds     repository.FeedRepository
	cache     *cache.Cache // nil disables caching
}

// NewArticleService creates a new ArticleService. A nil cache disables
// caching entirely.
func NewArticleService(
	articles repository.ArticleRepository,
	tags repository.TagRepository,
	favorites repository.FavoriteRepository,
	queries repository.ArticleQueryRepository,
	feeds repository.FeedRepository,
	c *cache.Cache,
) *ArticleService {
	return &ArticleService{
		articles:  articles,
		tags:      tags,
		favorites: favorites,
		queries:   queries,
		feeds:     feeds,
		cache:     c,
	}
}

// List returns enriched articles, serving repeated pages from cache.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter, viewer *string, limit, offset int) ([]domain.ArticleView, error) {
	key := cache.ArticleListKey(filter, viewer, limit, offset)
	var views []domain.ArticleView
	if s.cacheGet(ctx, cache.KindArticleList, key, &views) {
		return views, nil
	}

	timer := metrics.NewTimer()
	views, err := s.queries.List(ctx, filter, viewer, limit, offset)
	if err != nil {
		metrics.ObserveQuery("list", "error", timer.Seconds())
		return nil, err
	}
	metrics.ObserveQuery("list", "success", timer.Seconds())

	s.cacheSet(ctx, cache.KindArticleList, key, views)
	return views, nil
}

// Get returns one enriched article.
func (s *ArticleService) Get(ctx context.Context, slug string, viewer *string) (*domain.ArticleView, error) {
	key := cache.ArticleDetailKey(slug, viewer)
	var view domain.ArticleView
	if s.cacheGet(ctx, cache.KindArticleDetail, key, &view) {
		return &view, nil
	}

	timer := metrics.NewTimer()
	got, err := s.queries.GetBySlug(ctx, slug, viewer)
	if err != nil {
		metrics.ObserveQuery("get", "error", timer.Seconds())
		return nil, err
	}
	metrics.ObserveQuery("get", "success", timer.Seconds())

	s.cacheSet(ctx, cache.KindArticleDetail, key, got)
	return got, nil
}

// Feed returns articles authored by followed users, oldest first.
func (s *ArticleService) Feed(ctx context.Context, followerUsername string, limit, offset int) ([]domain.Article, error) {
	key := cache.FeedKey(followerUsername, limit, offset)
	var feed []domain.Article
	if s.cacheGet(ctx, cache.KindFeed, key, &feed) {
		return feed, nil
	}

	timer := metrics.NewTimer()
	feed, err := s.feeds.FeedFor(ctx, followerUsername, limit, offset)
	if err != nil {
		metrics.ObserveQuery("feed", "error", timer.Seconds())
		return nil, err
	}
	metrics.ObserveQuery("feed", "success", timer.Seconds())

	s.cacheSet(ctx, cache.KindFeed, key, feed)
	return feed, nil
}

// Create inserts the article, attaches its initial tags, and returns
// the enriched view.
func (s *ArticleService) Create(ctx context.Context, authorUsername, slug, title string, description *string, body string, tags []string) (*domain.ArticleView, error) {
	article, err := s.articles.Create(ctx, authorUsername, slug, title, description, body)
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		if err := s.tags.Attach(ctx, article.Slug, tag); err != nil {
			return nil, err
		}
	}

	logger.InfoContext(ctx, "article created",
		slog.String("slug", article.Slug),
		slog.String("author", authorUsername))

	s.invalidateLists(ctx)
	if len(tags) > 0 {
		s.invalidate(ctx, cache.KindTags, cache.TagsKey())
	}

	return s.queries.GetBySlug(ctx, article.Slug, &authorUsername)
}

// Update applies changes on behalf of the author and returns the
// refreshed view under its (possibly new) slug.
func (s *ArticleService) Update(ctx context.Context, slug, authorUsername string, changes domain.ArticleChanges) (*domain.ArticleView, error) {
	if _, err := s.articles.Update(ctx, slug, authorUsername, changes); err != nil {
		return nil, err
	}

	currentSlug := slug
	if changes.Slug != nil {
		currentSlug = *changes.Slug
	}

	logger.InfoContext(ctx, "article updated",
		slog.String("slug", currentSlug),
		slog.String("author", authorUsername))

	s.invalidate(ctx, cache.KindArticleDetail, cache.ArticleDetailPatterns(slug)...)
	if currentSlug != slug {
		s.invalidate(ctx, cache.KindArticleDetail, cache.ArticleDetailPatterns(currentSlug)...)
	}
	s.invalidateLists(ctx)

	return s.queries.GetBySlug(ctx, currentSlug, &authorUsername)
}

// Delete removes the article on behalf of the author.
func (s *ArticleService) Delete(ctx context.Context, slug, authorUsername string) error {
	if err := s.articles.Delete(ctx, slug, authorUsername); err != nil {
		return err
	}

	logger.InfoContext(ctx, "article deleted",
		slog.String("slug", slug),
		slog.String("author", authorUsername))

	s.invalidate(ctx, cache.KindArticleDetail, cache.ArticleDetailPatterns(slug)...)
	s.invalidateLists(ctx)
	return nil
}

// Favorite records username's favorite of the article. Repeated calls
// are no-ops; either way the refreshed view is returned.
func (s *ArticleService) Favorite(ctx context.Context, username, slug string) (*domain.ArticleView, error) {
	applied, err := s.favorites.Add(ctx, username, slug)
	if err != nil {
		return nil, err
	}
	metrics.ObserveFavoriteOp("add", outcome(applied))

	if applied {
		s.invalidate(ctx, cache.KindArticleDetail, cache.ArticleDetailPatterns(slug)...)
		s.invalidateLists(ctx)
	}
	return s.queries.GetBySlug(ctx, slug, &username)
}

// Unfavorite removes username's favorite of the article, tolerating an
// absent one.
func (s *ArticleService) Unfavorite(ctx context.Context, username, slug string) (*domain.ArticleView, error) {
	applied, err := s.favorites.Remove(ctx, username, slug)
	if err != nil {
		return nil, err
	}
	metrics.ObserveFavoriteOp("remove", outcome(applied))

	if applied {
		s.invalidate(ctx, cache.KindArticleDetail, cache.ArticleDetailPatterns(slug)...)
		s.invalidateLists(ctx)
	}
	return s.queries.GetBySlug(ctx, slug, &username)
}

// Tags returns every known tag.
func (s *ArticleService) Tags(ctx context.Context) ([]string, error) {
	key := cache.TagsKey()
	var tags []string
	if s.cacheGet(ctx, cache.KindTags, key, &tags) {
		return tags, nil
	}

	tags, err := s.tags.All(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.KindTags, key, tags)
	return tags, nil
}

// TagsFor returns one article's tags. Uncached: the enriched views
// already carry tags, so this path serves only direct lookups.
func (s *ArticleService) TagsFor(ctx context.Context, slug string) ([]string, error) {
	return s.tags.TagsFor(ctx, slug)
}

func (s *ArticleService) cacheGet(ctx context.Context, kind, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, kind, key, dest)
}

func (s *ArticleService) cacheSet(ctx context.Context, kind, key string, value interface{}) {
	if s.cache != nil {
		s.cache.Set(ctx, kind, key, value)
	}
}

func (s *ArticleService) invalidate(ctx context.Context, kind string, patterns ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, kind, patterns...)
	}
}

// invalidateLists drops every cached listing and feed page. Feeds
// depend on authorship and the follow graph, so any article write can
// stale them.
func (s *ArticleService) invalidateLists(ctx context.Context) {
	s.invalidate(ctx, cache.KindArticleList, cache.ArticleListPattern())
	s.invalidate(ctx, cache.KindFeed, cache.FeedPattern())
}

func outcome(applied bool) string {
	if applied {
		return "applied"
	}
	return "noop"
}
