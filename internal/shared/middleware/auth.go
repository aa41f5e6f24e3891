package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"mediadb-backend/internal/domains/user/model"
	"mediadb-backend/internal/domains/user/repository"
	"mediadb-backend/internal/shared/response"
	"mediadb-backend/pkg/token"
)

const currentUserKey = "currentUser"

// Auth validates the Bearer token and resolves the current user from the
// store. The token carries only the username, so role changes take effect on
// the next request without re-issuing tokens.
func Auth(tokens *token.Manager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		username, err := tokens.Verify(parts[1])
		if err != nil {
			// Expired and invalid both map to 401 on the wire but are
			// logged apart.
			if errors.Is(err, token.ErrTokenExpired) {
				log.Info().Str("request_id", c.GetString("request_id")).Msg("expired token rejected")
				response.Unauthorized(c, "token has expired")
			} else {
				log.Info().Str("request_id", c.GetString("request_id")).Msg("invalid token rejected")
				response.Unauthorized(c, "invalid token")
			}
			c.Abort()
			return
		}

		user, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				// Token outlived the account.
				response.Unauthorized(c, "please, login again")
			} else {
				log.Error().Err(err).Msg("failed to resolve current user")
				response.InternalServerError(c, "failed to resolve current user")
			}
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Auth for this request.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
