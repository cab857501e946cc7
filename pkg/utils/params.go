package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
)

// ParseID reads a positive integer path parameter. On failure it has already
// answered 400 and the handler should return.
func ParseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}

// QueryInt reads an integer query parameter, returning fallback when it is
// missing or not a number.
func QueryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
