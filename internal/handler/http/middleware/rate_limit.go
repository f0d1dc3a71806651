package middleware

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
)

var ipLookups = []string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"}

// NewGlobalLimiter allows perSecond requests per client IP.
func NewGlobalLimiter(perSecond float64) *limiter.Limiter {
	lmt := tollbooth.NewLimiter(perSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups(ipLookups)
	lmt.SetMessage("Too many requests, please try again later.")
	return lmt
}

// NewStrictLimiter allows perMinute requests per client IP, for login and
// the public contact form.
func NewStrictLimiter(perMinute float64) *limiter.Limiter {
	lmt := tollbooth.NewLimiter(perMinute/60, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetBurst(int(perMinute))
	lmt.SetIPLookups(ipLookups)
	lmt.SetMessageContentType("application/json; charset=utf-8")
	lmt.SetMessage(`{"error":"Too many attempts, please try again later."}`)
	return lmt
}

// RateLimiter answers limited requests with the JSON error body used by
// every other handler.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": httpError.Message})
			return
		}
		c.Next()
	}
}

// StrictRateLimiter is the per-route limiter.
func StrictRateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(lmt)
}
