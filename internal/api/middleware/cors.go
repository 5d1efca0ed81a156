package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows browser origins that start with one of the given prefixes.
// Websocket upgrades bypass it; their origin is checked by the upgrader.
func CORSMiddleware(allowedPrefixes []string) gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return OriginAllowed(allowedPrefixes, origin)
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

// OriginAllowed reports whether origin matches a prefix. "*" matches anything.
func OriginAllowed(allowedPrefixes []string, origin string) bool {
	for _, p := range allowedPrefixes {
		if p == "*" || strings.HasPrefix(origin, p) {
			return true
		}
	}
	return false
}
