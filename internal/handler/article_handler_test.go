package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"article-query/internal/domain"
	"article-query/internal/middleware"
	"article-query/internal/mocks"
	"article-query/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func strPtr(s string) *string { return &s }

func newArticleRouter(mockService *mocks.MockArticleServiceInterface) *gin.Engine {
	handler := NewArticleHandler(mockService, validator.NewValidator(), 20)

	router := gin.New()
	router.Use(middleware.Viewer())
	router.GET("/api/v1/articles", handler.ListArticles)
	router.GET("/api/v1/articles/feed", handler.GetFeed)
	router.GET("/api/v1/articles/:slug", handler.GetArticle)
	router.POST("/api/v1/articles", handler.CreateArticle)
	router.PUT("/api/v1/articles/:slug", handler.UpdateArticle)
	router.DELETE("/api/v1/articles/:slug", handler.DeleteArticle)
	router.POST("/api/v1/articles/:slug/favorite", handler.FavoriteArticle)
	router.DELETE("/api/v1/articles/:slug/favorite", handler.UnfavoriteArticle)
	return router
}

func sampleView(slug string) *domain.ArticleView {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.ArticleView{
		Article: domain.Article{
			ID:             "a1",
			Slug:           slug,
			Title:          "Understanding Slices",
			Body:           "Slices are views over arrays.",
			AuthorID:       "u1",
			AuthorUsername: "alice",
			FavoritesCount: 2,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		Author:    domain.Profile{Username: "alice", Bio: "gopher"},
		Tags:      []string{"go", "internals"},
		Favorited: true,
	}
}

func TestArticleHandler_ListArticles(t *testing.T) {
	t.Run("returns enriched articles with count", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			List(mock.Anything, domain.ArticleFilter{}, (*string)(nil), 20, 0).
			Return([]domain.ArticleView{*sampleView("go-slices")}, nil)

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Articles []ArticleResponse `json:"articles"`
			Count    int               `json:"articles_count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Articles, 1)
		assert.Equal(t, 1, response.Count)
		assert.Equal(t, "go-slices", response.Articles[0].Slug)
		assert.Equal(t, []string{"go", "internals"}, response.Articles[0].TagList)
		assert.Equal(t, "alice", response.Articles[0].Author.Username)
		assert.True(t, response.Articles[0].Favorited)
	})

	t.Run("passes filters, viewer and pagination through", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			List(mock.Anything,
				domain.ArticleFilter{Tag: strPtr("go"), Author: strPtr("alice"), Favorited: strPtr("carol")},
				strPtr("carol"), 5, 10).
			Return([]domain.ArticleView{}, nil)

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?tag=go&author=alice&favorited=carol&limit=5&offset=10", nil)
		req.Header.Set(middleware.ViewerHeader, "carol")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"articles_count":0`)
	})

	t.Run("rejects non-integer limit", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?limit=ten", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "List")
	})

	t.Run("rejects zero limit", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?limit=0", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?offset=-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps storage failure to 503", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			List(mock.Anything, domain.ArticleFilter{}, (*string)(nil), 20, 0).
			Return(nil, domain.ErrUnavailable)

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestArticleHandler_GetFeed(t *testing.T) {
	t.Run("returns feed for authenticated viewer", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		mockService.EXPECT().
			Feed(mock.Anything, "carol", 20, 0).
			Return([]domain.Article{{
				Slug:           "go-slices",
				Title:          "Understanding Slices",
				AuthorUsername: "alice",
				CreatedAt:      now,
				UpdatedAt:      now,
			}}, nil)

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/feed", nil)
		req.Header.Set(middleware.ViewerHeader, "carol")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Articles []FeedItemResponse `json:"articles"`
			Count    int                `json:"articles_count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Articles, 1)
		assert.Equal(t, "alice", response.Articles[0].AuthorUsername)
	})

	t.Run("requires authentication", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/feed", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Feed")
	})

	t.Run("maps unknown follower to 404", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Feed(mock.Anything, "ghost", 20, 0).
			Return(nil, domain.NotFoundError("user", "ghost"))

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/feed", nil)
		req.Header.Set(middleware.ViewerHeader, "ghost")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_GetArticle(t *testing.T) {
	t.Run("returns enriched article", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Get(mock.Anything, "go-slices", strPtr("carol")).
			Return(sampleView("go-slices"), nil)

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/go-slices", nil)
		req.Header.Set(middleware.ViewerHeader, "carol")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "go-slices", response.Slug)
		assert.Equal(t, 2, response.FavoritesCount)
	})

	t.Run("returns 404 for missing article", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Get(mock.Anything, "missing", (*string)(nil)).
			Return(nil, domain.NotFoundError("article", "missing"))

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects malformed slug", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/Not_A_Slug", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Get")
	})
}

func TestArticleHandler_CreateArticle(t *testing.T) {
	t.Run("creates article with tags", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Create(mock.Anything, "alice", "go-slices", "Understanding Slices", (*string)(nil), "Slices are views over arrays.", []string{"go", "internals"}).
			Return(sampleView("go-slices"), nil)

		router := newArticleRouter(mockService)
		payload, _ := json.Marshal(gin.H{
			"slug":     "go-slices",
			"title":    "Understanding Slices",
			"body":     "Slices are views over arrays.",
			"tag_list": []string{"go", "internals"},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ViewerHeader, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "go-slices", response.Slug)
	})

	t.Run("requires authentication", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		payload, _ := json.Marshal(gin.H{"slug": "go-slices", "title": "t", "body": "b"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("rejects invalid slug format", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		payload, _ := json.Marshal(gin.H{"slug": "Go Slices!", "title": "t", "body": "b"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ViewerHeader, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("maps duplicate slug to 409", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Create(mock.Anything, "alice", "go-slices", "Understanding Slices", (*string)(nil), "body", []string(nil)).
			Return(nil, domain.ConflictError("article", "go-slices"))

		router := newArticleRouter(mockService)
		payload, _ := json.Marshal(gin.H{"slug": "go-slices", "title": "Understanding Slices", "body": "body"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ViewerHeader, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestArticleHandler_UpdateArticle(t *testing.T) {
	t.Run("applies partial update", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Update(mock.Anything, "go-slices", "alice", domain.ArticleChanges{Title: strPtr("New Title")}).
			Return(sampleView("go-slices"), nil)

		router := newArticleRouter(mockService)
		payload, _ := json.Marshal(gin.H{"title": "New Title"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/articles/go-slices", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ViewerHeader, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects empty update", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/articles/go-slices", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ViewerHeader, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Update")
	})

	t.Run("maps non-author to 403", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Update(mock.Anything, "go-slices", "bob", domain.ArticleChanges{Title: strPtr("Hijacked")}).
			Return(nil, domain.ForbiddenError("article", "go-slices"))

		router := newArticleRouter(mockService)
		payload, _ := json.Marshal(gin.H{"title": "Hijacked"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/articles/go-slices", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ViewerHeader, "bob")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestArticleHandler_DeleteArticle(t *testing.T) {
	t.Run("deletes owned article", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Delete(mock.Anything, "go-slices", "alice").
			Return(nil)

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles/go-slices", nil)
		req.Header.Set(middleware.ViewerHeader, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("maps non-author to 403", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Delete(mock.Anything, "go-slices", "bob").
			Return(domain.ForbiddenError("article", "go-slices"))

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles/go-slices", nil)
		req.Header.Set(middleware.ViewerHeader, "bob")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestArticleHandler_Favorites(t *testing.T) {
	t.Run("favorite returns refreshed view", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Favorite(mock.Anything, "carol", "go-slices").
			Return(sampleView("go-slices"), nil)

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles/go-slices/favorite", nil)
		req.Header.Set(middleware.ViewerHeader, "carol")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Favorited)
	})

	t.Run("unfavorite returns refreshed view", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		view := sampleView("go-slices")
		view.Favorited = false
		view.FavoritesCount = 1
		mockService.EXPECT().
			Unfavorite(mock.Anything, "carol", "go-slices").
			Return(view, nil)

		router := newArticleRouter(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles/go-slices/favorite", nil)
		req.Header.Set(middleware.ViewerHeader, "carol")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Favorited)
		assert.Equal(t, 1, response.FavoritesCount)
	})

	t.Run("favorite requires authentication", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		router := newArticleRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles/go-slices/favorite", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Favorite")
	})
}
