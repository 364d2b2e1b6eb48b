package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"article-query/internal/domain"
	"article-query/internal/mocks"
)

func newTagRouter(mockService *mocks.MockArticleServiceInterface) *gin.Engine {
	handler := NewTagHandler(mockService)
	router := gin.New()
	router.GET("/api/v1/tags", handler.ListTags)
	return router
}

func TestTagHandler_ListTags(t *testing.T) {
	t.Run("returns all known tags", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Tags(mock.Anything).
			Return([]string{"fantasy", "go", "internals"}, nil)

		router := newTagRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Tags []string `json:"tags"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{"fantasy", "go", "internals"}, response.Tags)
	})

	t.Run("returns empty list, not null, when no tags exist", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Tags(mock.Anything).
			Return(nil, nil)

		router := newTagRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tags":[]}`, w.Body.String())
	})

	t.Run("maps storage failure to 503", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().
			Tags(mock.Anything).
			Return(nil, domain.ErrUnavailable)

		router := newTagRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
