package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shasthoseba/chamber-booking/internal/httperr"
)

// idParam parses a numeric path parameter, writing a 400 on failure.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// uintQuery parses an optional numeric query parameter.
func uintQuery(c *gin.Context, name string) (*uint, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid "+name)
		return nil, false
	}
	id := uint(v)
	return &id, true
}
