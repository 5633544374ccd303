package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 25
	maxPageLimit     = 50
)

// parsePagination reads skip/limit query params. Out-of-range values
// are clamped rather than rejected.
func parsePagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}
