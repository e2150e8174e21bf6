package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agustinbotella/articulos-api/internal/apierror"
)

const APIKeyHeader = "X-Api-Key"

// APIKey checks the static key on every protected route. An empty configured
// key disables the check (local development against a dev database).
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		provided := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(apierror.CodeUnauthorized, "API key invalida o ausente"))
			return
		}
		c.Next()
	}
}
