package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set(HeaderPrincipal, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())
	r.GET("/probe", AuthRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestIdentity_PrincipalResolved(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())

	var seen string
	r.GET("/probe", func(c *gin.Context) {
		seen, _ = GetPrincipal(c)
		c.Status(http.StatusOK)
	})

	w := performRequest(r, "user-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", seen)
}

func TestIdentity_AnonymousIsGuest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())

	r.GET("/probe", func(c *gin.Context) {
		_, ok := GetPrincipal(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	for _, header := range []string{"Anonymous", "anonymous", "ANONYMOUS", ""} {
		w := performRequest(r, header)
		assert.Equal(t, http.StatusOK, w.Code, "header %q", header)
	}
}

func TestAuthRequired_RejectsGuests(t *testing.T) {
	r := setupProtectedRouter()

	w := performRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(r, "Anonymous")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_PassesPrincipals(t *testing.T) {
	r := setupProtectedRouter()

	w := performRequest(r, "user-1")
	assert.Equal(t, http.StatusOK, w.Code)
}
