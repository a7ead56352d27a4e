package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user_id"

// AuthOptional memverifikasi token kalau ada, tanpa menolak request anonim.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, secret); ok {
			setAuthUser(c, claims)
		}
		c.Next()
	}
}

// RequireAuth menolak request tanpa token valid.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tidak valid"})
			return
		}
		setAuthUser(c, claims)
		c.Next()
	}
}

// extractToken mencoba semua tempat token yang pernah dipakai frontend:
// Authorization bearer, header X-Access-Token, lalu query "token".
func extractToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return h
	}
	if h := strings.TrimSpace(c.GetHeader("X-Access-Token")); h != "" {
		return h
	}
	return strings.TrimSpace(c.Query("token"))
}

func parseToken(c *gin.Context, secret string) (jwt.MapClaims, bool) {
	raw := extractToken(c)
	if raw == "" {
		return nil, false
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func setAuthUser(c *gin.Context, claims jwt.MapClaims) {
	if v, ok := claims["user_id"]; ok {
		if f, ok := v.(float64); ok {
			c.Set(authUserKey, int64(f))
		}
	}
}

// GetAuthUserID membaca user id hasil verifikasi token, 0 kalau anonim.
func GetAuthUserID(c *gin.Context) int64 {
	if c == nil {
		return 0
	}
	if v, ok := c.Get(authUserKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
