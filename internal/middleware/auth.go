package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
	"github.com/vinnynacc/teammate-directory-api/pkg/response"
)

// HeaderAdminToken is the custom header the admin page sends the credential in.
const HeaderAdminToken = "X-Admin-Token"

type authorizer interface {
	Authorize(presented string) bool
}

// AdminToken protects mutating routes behind the shared admin credential,
// presented either in the X-Admin-Token header or an Authorization header
// with an optional Bearer prefix.
func AdminToken(guard authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := PresentedToken(c)
		if token == "" || !guard.Authorize(token) {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// PresentedToken extracts the admin credential from the request headers.
func PresentedToken(c *gin.Context) string {
	token := c.GetHeader(HeaderAdminToken)
	if token == "" {
		token = c.GetHeader("Authorization")
	}
	if token == "" {
		return ""
	}

	parts := strings.SplitN(token, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(token)
}
