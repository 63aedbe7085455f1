package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetUserID reads the authenticated user id the JWT middleware stored in
// the request context.
func GetUserID(c *gin.Context) (uint, error) {
	uidRaw, exists := c.Get("user_id")
	if !exists {
		return 0, errors.New("not authenticated")
	}

	uidStr, ok := uidRaw.(string)
	if !ok {
		return 0, errors.New("invalid user id type")
	}

	uid, err := strconv.ParseUint(uidStr, 10, 32)
	if err != nil {
		return 0, errors.New("invalid user id format")
	}

	return uint(uid), nil
}
