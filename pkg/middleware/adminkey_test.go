package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/admin", AdminKey(secret), func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func TestAdminKey_HeaderAccepted(t *testing.T) {
	r := newGatedRouter("s3cret")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("x-admin-key", "s3cret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKey_QueryParamAccepted(t *testing.T) {
	r := newGatedRouter("s3cret")

	req := httptest.NewRequest("GET", "/admin?key=s3cret", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKey_FailsClosed(t *testing.T) {
	r := newGatedRouter("s3cret")

	for _, req := range []*http.Request{
		httptest.NewRequest("GET", "/admin", nil),
		httptest.NewRequest("GET", "/admin?key=wrong", nil),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Unauthorized")
	}
}

func TestAdminKey_HeaderTakesPrecedence(t *testing.T) {
	r := newGatedRouter("s3cret")

	// wrong header is not rescued by a correct query key
	req := httptest.NewRequest("GET", "/admin?key=s3cret", nil)
	req.Header.Set("x-admin-key", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
