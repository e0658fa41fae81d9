package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/doctor-api/internal/models"
)

// ClaimsKey is the context key holding the decoded token claims.
const ClaimsKey = "decoded"

const (
	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
)

type TokenVerifier interface {
	ValidateJWT(token string) (jwt.MapClaims, error)
}

type UserFinder interface {
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
}

// VerifyToken rejects requests without a valid bearer token and stores the
// decoded claims for the handlers behind it.
func VerifyToken(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgUnauthorized})
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
			return
		}

		claims, err := tokens.ValidateJWT(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// VerifyAdmin must run after VerifyToken. It looks the caller up on every
// request and lets only role=admin through.
func VerifyAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := ClaimsEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
			return
		}

		user, err := users.FindOne(c.Request.Context(), models.UsersCollection, bson.M{"email": email})
		if err != nil {
			log.Errorf("VerifyAdmin: failed to look up %s: %v", email, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
			return
		}
		if !models.IsAdmin(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
			return
		}

		c.Next()
	}
}

// Claims returns the decoded claims set by VerifyToken, if any.
func Claims(c *gin.Context) (jwt.MapClaims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(jwt.MapClaims)
	return claims, ok
}

// ClaimsEmail returns the email claim, or "" when absent.
func ClaimsEmail(c *gin.Context) string {
	claims, ok := Claims(c)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
