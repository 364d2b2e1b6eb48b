// Package cache provides a Redis read-through cache for article query
// results. Storage stays authoritative: cache failures degrade to
// misses and every write path invalidates the keys it may have staled.
package cache

import (
	"fmt"
	"strings"

	"article-query/internal/domain"
)

// Key kinds, used as metric labels and invalidation scopes.
const (
	KindArticleDetail = "article_detail"
	KindArticleList   = "article_list"
	KindFeed          = "feed"
	KindTags          = "tags"
)

// ArticleDetailKey keys a single enriched article, per viewer because
// the favorited flag is personal.
func ArticleDetailKey(slug string, viewer *string) string {
	if viewer != nil {
		return fmt.Sprintf("article:detail:%s:user:%s", slug, *viewer)
	}
	return fmt.Sprintf("article:detail:%s", slug)
}

// ArticleDetailPatterns matches the anonymous key and every viewer
// variant of a slug's detail, and nothing else: a trailing bare * would
// also swallow slugs that merely share the prefix.
func ArticleDetailPatterns(slug string) []string {
	return []string{
		fmt.Sprintf("article:detail:%s", slug),
		fmt.Sprintf("article:detail:%s:user:*", slug),
	}
}

// ArticleListKey keys one page of a filtered listing, per viewer.
func ArticleListKey(filter domain.ArticleFilter, viewer *string, limit, offset int) string {
	parts := []string{"articles:list"}
	if filter.Tag != nil {
		parts = append(parts, "tag:"+*filter.Tag)
	}
	if filter.Author != nil {
		parts = append(parts, "author:"+*filter.Author)
	}
	if filter.Favorited != nil {
		parts = append(parts, "favorited:"+*filter.Favorited)
	}
	if len(parts) == 1 {
		parts = append(parts, "all")
	}
	if viewer != nil {
		parts = append(parts, "viewer:"+*viewer)
	}
	parts = append(parts, fmt.Sprintf("limit:%d", limit), fmt.Sprintf("offset:%d", offset))
	return strings.Join(parts, ":")
}

// ArticleListPattern matches every cached listing page.
func ArticleListPattern() string {
	return "articles:list:*"
}

// FeedKey keys one page of a user's feed.
func FeedKey(username string, limit, offset int) string {
	return fmt.Sprintf("feed:%s:limit:%d:offset:%d", username, limit, offset)
}

// FeedPattern matches every cached feed page; feeds depend on the whole
// follow graph, so article writes invalidate them all.
func FeedPattern() string {
	return "feed:*"
}

// TagsKey keys the global tag list.
func TagsKey() string {
	return "tags:all"
}
