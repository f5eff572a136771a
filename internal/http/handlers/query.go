package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// parsePage reads skip/limit query params with bounds checking.
func parsePage(c *gin.Context) (skip, limit int64, err error) {
	skip = 0
	if v := c.Query("skip"); v != "" {
		skip, err = strconv.ParseInt(v, 10, 64)
		if err != nil || skip < 0 {
			return 0, 0, errors.New("skip must be a non-negative integer")
		}
	}

	limit = defaultLimit
	if v := c.Query("limit"); v != "" {
		limit, err = strconv.ParseInt(v, 10, 64)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, errors.New("limit must be an integer between 1 and 1000")
		}
	}

	return skip, limit, nil
}

// parseOptionalBool accepts only "true" or "false"; empty means unset.
func parseOptionalBool(v string) (*bool, error) {
	switch v {
	case "":
		return nil, nil
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	default:
		return nil, errors.New("must be true or false")
	}
}
