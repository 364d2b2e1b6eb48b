package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"article-query/internal/domain"
	"article-query/internal/middleware"
	"article-query/internal/service"
	"article-query/internal/validator"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
	validator      *validator.Validator
	defaultLimit   int
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface, v *validator.Validator, defaultLimit int) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		validator:      v,
		defaultLimit:   defaultLimit,
	}
}

// ProfileResponse represents an author snippet in the API response.
type ProfileResponse struct {
	Username string  `json:"username"`
	Bio      string  `json:"bio"`
	Image    *string `json:"image,omitempty"`
}

// ArticleResponse represents an enriched article in the API response.
type ArticleResponse struct {
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Description    *string         `json:"description,omitempty"`
	Body           string          `json:"body"`
	TagList        []string        `json:"tag_list"`
	Favorited      bool            `json:"favorited"`
	FavoritesCount int             `json:"favorites_count"`
	Author         ProfileResponse `json:"author"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// FeedItemResponse represents a feed entry in the API response. Feed
// entries carry no tag list or favorite flag.
type FeedItemResponse struct {
	Slug           string  `json:"slug"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	AuthorUsername string  `json:"author_username"`
	FavoritesCount int     `json:"favorites_count"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// toArticleResponse converts a domain.ArticleView to an ArticleResponse.
func toArticleResponse(view *domain.ArticleView) ArticleResponse {
	tags := view.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleResponse{
		Slug:           view.Slug,
		Title:          view.Title,
		Description:    view.Description,
		Body:           view.Body,
		TagList:        tags,
		Favorited:      view.Favorited,
		FavoritesCount: view.FavoritesCount,
		Author: ProfileResponse{
			Username: view.Author.Username,
			Bio:      view.Author.Bio,
			Image:    view.Author.Image,
		},
		CreatedAt: view.CreatedAt.Format(TimeFormat),
		UpdatedAt: view.UpdatedAt.Format(TimeFormat),
	}
}

func toFeedItemResponse(article domain.Article) FeedItemResponse {
	return FeedItemResponse{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		AuthorUsername: article.AuthorUsername,
		FavoritesCount: article.FavoritesCount,
		CreatedAt:      article.CreatedAt.Format(TimeFormat),
		UpdatedAt:      article.UpdatedAt.Format(TimeFormat),
	}
}

// pagination parses limit and offset query parameters, applying the
// configured default page size when limit is absent.
func (h *ArticleHandler) pagination(c *gin.Context) (int, int, bool) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return 0, 0, false
		}
		limit = parsed
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
			return 0, 0, false
		}
		offset = parsed
	}

	if err := h.validator.ValidatePagination(limit, offset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, false
	}
	return limit, offset, true
}

func queryParam(c *gin.Context, name string) *string {
	if value := c.Query(name); value != "" {
		return &value
	}
	return nil
}

// ListArticles handles GET /api/v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	limit, offset, ok := h.pagination(c)
	if !ok {
		return
	}

	filter := domain.ArticleFilter{
		Tag:       queryParam(c, "tag"),
		Author:    queryParam(c, "author"),
		Favorited: queryParam(c, "favorited"),
	}

	views, err := h.articleService.List(c.Request.Context(), filter, middleware.GetViewer(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	articles := make([]ArticleResponse, 0, len(views))
	for i := range views {
		articles = append(articles, toArticleResponse(&views[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":       articles,
		"articles_count": len(articles),
	})
}

// GetFeed handles GET /api/v1/articles/feed
func (h *ArticleHandler) GetFeed(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	limit, offset, ok := h.pagination(c)
	if !ok {
		return
	}

	feed, err := h.articleService.Feed(c.Request.Context(), *viewer, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	articles := make([]FeedItemResponse, 0, len(feed))
	for _, article := range feed {
		articles = append(articles, toFeedItemResponse(article))
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":       articles,
		"articles_count": len(articles),
	})
}

// GetArticle handles GET /api/v1/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	slug := c.Param(slugParam)
	if err := h.validator.ValidateSlug(slug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.articleService.Get(c.Request.Context(), slug, middleware.GetViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(view))
}

// CreateArticleRequest is the payload for POST /api/v1/articles.
type CreateArticleRequest struct {
	validator.CreateArticleInput
	TagList []string `json:"tag_list,omitempty"`
}

// CreateArticle handles POST /api/v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateCreateArticle(&req.CreateArticleInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, tag := range req.TagList {
		if err := h.validator.ValidateTag(tag); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	view, err := h.articleService.Create(c.Request.Context(), *viewer, req.Slug, req.Title, req.Description, req.Body, req.TagList)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(view))
}

// UpdateArticle handles PUT /api/v1/articles/:slug
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	slug := c.Param(slugParam)
	if err := h.validator.ValidateSlug(slug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req validator.UpdateArticleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateUpdateArticle(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changes := domain.ArticleChanges{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
	}

	view, err := h.articleService.Update(c.Request.Context(), slug, *viewer, changes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(view))
}

// DeleteArticle handles DELETE /api/v1/articles/:slug
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	slug := c.Param(slugParam)
	if err := h.validator.ValidateSlug(slug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), slug, *viewer); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FavoriteArticle handles POST /api/v1/articles/:slug/favorite
func (h *ArticleHandler) FavoriteArticle(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	slug := c.Param(slugParam)
	if err := h.validator.ValidateSlug(slug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.articleService.Favorite(c.Request.Context(), *viewer, slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(view))
}

// UnfavoriteArticle handles DELETE /api/v1/articles/:slug/favorite
func (h *ArticleHandler) UnfavoriteArticle(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	slug := c.Param(slugParam)
	if err := h.validator.ValidateSlug(slug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.articleService.Unfavorite(c.Request.Context(), *viewer, slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(view))
}
