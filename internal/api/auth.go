package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PennyPaws/petengine-go/internal/services/context_manager"
	"github.com/PennyPaws/petengine-go/internal/services/cooldown"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// authClaims is the token payload the mobile client presents. UserID is
// carried in a custom claim with the registered subject as fallback.
type authClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := &authClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		userID := claims.UserID
		if userID == "" {
			userID = claims.Subject
		}
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		c.Request = c.Request.WithContext(
			context_manager.SetUserContext(c.Request.Context(), userID),
		)
		c.Next()
	}
}

// RateLimitMiddleware paces the pet/hit interaction endpoints. Limiter
// errors fail open: pacing is UX policy, not a correctness requirement.
func RateLimitMiddleware(limiter cooldown.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := context_manager.GetUserContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		decision, err := limiter.Check(c.Request.Context(), userID)
		if err != nil {
			fmt.Printf("cooldown check error for %s: %v\n", userID, err)
			c.Next()
			return
		}
		if !decision.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "too many interactions, try again in " + cooldown.FormatRetryAfter(decision.RetryAfter),
				"retry_after": decision.RetryAfter.Seconds(),
			})
			return
		}
		c.Next()
	}
}

// currentUser pulls the authenticated user id, replying 401 when absent.
func currentUser(c *gin.Context) (string, bool) {
	userID, err := context_manager.GetUserContext(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return "", false
	}
	return userID, true
}
