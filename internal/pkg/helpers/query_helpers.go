package helpers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseLimitParam reads a positive integer query parameter, falling back to
// def when absent or malformed and capping the result at max.
func ParseLimitParam(c *gin.Context, key string, def, max int) int {
	limit, err := strconv.Atoi(c.Query(key))
	if err != nil || limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return limit
}

// ParseBoolQuery returns a pointer to the boolean value of a query parameter,
// or nil when the parameter is absent or empty. ok is false for a value that
// is not a boolean.
func ParseBoolQuery(c *gin.Context, key string) (value *bool, ok bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// ParseIDParam parses a positive int64 path parameter
func ParseIDParam(c *gin.Context, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
