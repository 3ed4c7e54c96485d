package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxMessageBodyBytes caps the contact submission payload. 32 KB leaves
// generous headroom over the largest legal message (1200 chars).
const MaxMessageBodyBytes = 32 << 10

// BodyLimit rejects request bodies larger than limit bytes. The JSON
// decoder surfaces the truncation as a binding error, so oversized
// payloads come back as a 400.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
