package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
)

// APIKeyLogger inspects the optional gateway credential headers and logs
// their presence. It never rejects a request: the gateway in front of this
// service may or may not forward an API key, so "validation" stays a no-op.
func APIKeyLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			key = c.GetHeader("X-Dummy-Auth")
		}
		if key != "" {
			if len(key) > 10 {
				key = key[:10]
			}
			log.Printf("[http] request with api key: %s...", key)
		} else {
			log.Printf("[http] request without api key (public access)")
		}
		c.Next()
	}
}
