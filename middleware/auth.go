package middleware

import (
	"net/http"
	"strings"

	"blogspace-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "user_id"

// AuthRequired validates the bearer token and aborts with 401 when it is
// missing or invalid. Handlers behind it can rely on user_id being set.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromRequest(c, jwtSecret)
		if !ok {
			utils.SendError(c, http.StatusUnauthorized, "Authentication credentials were not provided")
			c.Abort()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AuthOptional sets user_id when a valid bearer token is present and
// always lets the request through. Used on endpoints that accept
// anonymous callers but attribute work to authenticated ones.
func AuthOptional(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := userIDFromRequest(c, jwtSecret); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

func userIDFromRequest(c *gin.Context, jwtSecret string) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
