package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID correlation header echoed on every response
const HeaderRequestID = "X-Request-ID"

// CtxRequestID gin context key of the request correlation id
const CtxRequestID = "request_id"

// requestIDMaxLen longer client ids are replaced to keep logs clean
const requestIDMaxLen = 64

// RequestID propagates X-Request-ID from the frontend or a proxy.
// Ids that are too long or carry anything but [A-Za-z0-9._-] are replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if !validRequestID(rid) {
			rid = uuid.New().String()
		}

		c.Set(CtxRequestID, rid)
		c.Header(HeaderRequestID, rid)

		c.Next()
	}
}

// GetRequestID correlation id of the current request, "" outside the chain
func GetRequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > requestIDMaxLen {
		return false
	}
	for _, r := range rid {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
