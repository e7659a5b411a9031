package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the pre-validated identity of the caller.
const HeaderUserID = "X-Sharer-User-Id"

// MissingHeaderMessage is returned when the identity header is absent or malformed.
const MissingHeaderMessage = "Header " + HeaderUserID + " requested"

// ParseUserID reads the sharer id header. ok is false when the header is
// missing or is not a positive integer.
func ParseUserID(r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// UserIDRequired is a Gin middleware that rejects requests without X-Sharer-User-Id.
func UserIDRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := ParseUserID(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": MissingHeaderMessage,
			})
			return
		}

		// Store user info into Gin context for later handlers.
		c.Set(userIDKey, id)

		c.Next()
	}
}

// OptionalUserID stores the sharer id when present and never aborts.
func OptionalUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := ParseUserID(c.Request); ok {
			c.Set(userIDKey, id)
		}
		c.Next()
	}
}
