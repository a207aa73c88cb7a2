package middleware

import (
	"log"
	"net/http"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/infrastructure/ratelimit"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/pkg"

	"github.com/gin-gonic/gin"
)

// RateLimit caps requests per client IP over the counter's fixed window.
// Excess requests are answered with 429 and never reach the handlers.
func RateLimit(counter *ratelimit.WindowCounter, limit int64) gin.HandlerFunc {
	tooMany := pkg.NewDomainErrorSimple("RATE_LIMIT_EXCEEDED", "Too many requests, try again shortly", http.StatusTooManyRequests)

	return func(c *gin.Context) {
		if !counter.Allow("ip:"+c.ClientIP(), limit) {
			log.Printf("[payment][ratelimit] blocked ip=%s path=%s", c.ClientIP(), c.FullPath())
			c.AbortWithStatusJSON(tooMany.HTTPStatus, tooMany.ToHTTPError())
			return
		}
		c.Next()
	}
}
