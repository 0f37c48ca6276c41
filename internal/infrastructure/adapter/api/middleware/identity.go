package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CallerIDKey is the context key under which the authenticated caller
// identity is stored.
const CallerIDKey = "callerId"

// Identity extracts the caller identity from the Bearer ID token and
// stores it in the request context. In managed deployments the API
// gateway authorizer has already verified the token signature before
// the handler runs; this harness trusts that contract and only reads
// the email claim.
func Identity(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
		if err != nil {
			logger.Warn("Rejected malformed bearer token", map[string]any{
				"error": err.Error(),
			})
			unauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c)
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			unauthorized(c)
			return
		}

		c.Set(CallerIDKey, email)
		c.Next()
	}
}

// CallerID returns the authenticated identity placed by the Identity
// middleware.
func CallerID(c *gin.Context) (string, bool) {
	id, ok := c.Get(CallerIDKey)
	if !ok {
		return "", false
	}
	email, ok := id.(string)
	return email, ok && email != ""
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
		Message: "Unauthorized access",
	})
}
