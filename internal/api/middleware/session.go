package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/core/ports"
	"github.com/bestcars/dealership-gateway/internal/core/service"
)

// Context keys populated by the session middleware.
const (
	CtxUsername = "username"
	CtxRole     = "user_type"
	CtxDealerID = "dealer_id"
)

// Session decodes a bearer session token when one is presented and injects
// the claims into the request context. It never rejects: a missing, invalid
// or revoked token leaves the request anonymous, and each handler decides
// what anonymity means for its route.
func Session(jwtSecret string, revoker ports.TokenRevoker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c.Request())
			if token == "" {
				return next(c)
			}

			claims, err := service.ParseClaims(token, jwtSecret)
			if err != nil {
				log.Debug().Err(err).Msg("unusable session token, treating as anonymous")
				return next(c)
			}

			if claims.JTI != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), claims.JTI)
				if err != nil {
					log.Error().Err(err).Msg("revocation check failed, treating as anonymous")
					return next(c)
				}
				if revoked {
					return next(c)
				}
			}

			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxDealerID, claims.DealerID)
			return next(c)
		}
	}
}

// BearerToken extracts the bearer token from the Authorization header, or ""
// when absent or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
