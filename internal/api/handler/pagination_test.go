package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, rawQuery string) (int, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return parsePagination(c)
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"", 0, 25},
		{"skip=10&limit=30", 10, 30},
		{"skip=-5", 0, 25},
		{"limit=0", 0, 25},
		{"limit=999", 0, 50},
		{"skip=abc&limit=xyz", 0, 25},
	}

	for _, tc := range cases {
		skip, limit := paginationFor(t, tc.query)
		assert.Equal(t, tc.wantSkip, skip, "query %q", tc.query)
		assert.Equal(t, tc.wantLimit, limit, "query %q", tc.query)
	}
}
