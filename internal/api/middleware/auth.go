// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/token"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	identityCtx         = "identity" // Key to store the verified identity in context
)

// Gate outcomes, in order: no token -> 401, bad token -> 400, wrong role ->
// 403. The messages are part of the API contract.
const (
	msgNoToken   = "Access denied. No token provided."
	msgBadToken  = "Invalid token."
	msgWrongRole = "Access denied. Insufficient role."
)

// Authenticate creates a Gin middleware that admits any valid token
// regardless of role and attaches the identity to the request context.
func Authenticate(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := verifyRequest(c, tokens)
		if !ok {
			return
		}
		c.Set(identityCtx, ident)
		c.Next()
	}
}

// RequireRole creates a Gin middleware that additionally demands the token's
// embedded role match. The role is trusted as issued; it is not re-checked
// against a persisted flag, so a demoted principal keeps access until the
// token expires.
func RequireRole(tokens *token.Manager, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := verifyRequest(c, tokens)
		if !ok {
			return
		}
		if ident.Role != role {
			log.Printf("Auth middleware: role %q rejected, route requires %q", ident.Role, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgWrongRole})
			return
		}
		c.Set(identityCtx, ident)
		c.Next()
	}
}

func verifyRequest(c *gin.Context, tokens *token.Manager) (*token.Identity, bool) {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNoToken})
		return nil, false
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNoToken})
		return nil, false
	}

	ident, err := tokens.Verify(headerParts[1])
	if err != nil {
		log.Printf("Auth middleware: token verification failed: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msgBadToken})
		return nil, false
	}
	return ident, true
}

// GetIdentity returns the verified identity a gate stored on the context.
func GetIdentity(c *gin.Context) (*token.Identity, error) {
	identAny, exists := c.Get(identityCtx)
	if !exists {
		return nil, errors.New("identity not found in context")
	}
	ident, ok := identAny.(*token.Identity)
	if !ok {
		return nil, errors.New("identity in context is of invalid type")
	}
	return ident, nil
}
