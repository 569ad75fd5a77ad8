package identityapi

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

// Authoriz validates the bearer token and attaches its claims to the
// request context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		// Extract the token part.
		token := parts[1]

		// Validate the token.
		claims, err := ts.Decode(token)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// UserIDFromContext extracts the authenticated user's ID from the claims the
// middleware stored. Returns uuid.Nil when the request carries no usable
// identity.
func UserIDFromContext(c *gin.Context) uuid.UUID {
	raw, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil
	}

	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil
	}

	idString, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return uuid.Nil
	}
	return id
}
