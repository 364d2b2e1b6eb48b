package middleware

import "github.com/gin-gonic/gin"

const (
	// ViewerHeader carries the authenticated username, set by the
	// upstream API gateway after it has verified the credentials.
	// Authentication itself is not this service's concern.
	ViewerHeader = "X-Viewer-Username"
	// ViewerKey is the context key for the viewer username
	ViewerKey = "viewer_username"
)

// Viewer extracts the authenticated viewer identity from the request,
// if any. Anonymous requests proceed with no viewer set.
func Viewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if username := c.GetHeader(ViewerHeader); username != "" {
			c.Set(ViewerKey, username)
		}
		c.Next()
	}
}

// GetViewer returns the viewer username, or nil for anonymous requests.
func GetViewer(c *gin.Context) *string {
	if v, exists := c.Get(ViewerKey); exists {
		if username, ok := v.(string); ok && username != "" {
			return &username
		}
	}
	return nil
}
