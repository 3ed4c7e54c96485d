package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
)

// localhostOrigin matches http(s)://localhost[:port] and 127.0.0.1 forms.
var localhostOrigin = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:\d+)?$`)

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	// AllowedOrigins is the exact-match allow-list.
	AllowedOrigins []string
	// AllowLocalhost additionally admits localhost-pattern origins,
	// for local frontend development.
	AllowLocalhost bool
}

// CORSMiddleware enforces the origin policy:
//   - requests without an Origin header always pass (server-to-server,
//     curl, same-origin)
//   - requests with an Origin pass only on an exact allow-list match, or
//     on the localhost pattern when that flag is enabled
//   - everything else gets no CORS headers, and preflights get a 403
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o != "" {
			allowed[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := origin == "" || allowed[origin] ||
			(cfg.AllowLocalhost && localhostOrigin.MatchString(origin))

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}

		// Caches must differentiate by Origin either way.
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		if !isAllowed {
			c.AbortWithStatus(403)
			return
		}

		c.Next()
	}
}
