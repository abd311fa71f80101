package middleware

import (
	"net/http"
	"strings"

	"carexyz/models"
	"carexyz/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the authenticated *models.Principal.
const PrincipalKey = "principal"

// JWTAuthMiddleware verifies the bearer token and stores the caller's principal.
func JWTAuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := tokens.ParseClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		role := models.Role(claims.Role)
		if role == "" {
			role = models.RoleUser
		}
		c.Set(PrincipalKey, &models.Principal{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   role,
		})
		c.Next()
	}
}

// PrincipalFrom returns the principal set by JWTAuthMiddleware, or nil.
func PrincipalFrom(c *gin.Context) *models.Principal {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*models.Principal)
	return p
}
