package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bestcars/dealership-gateway/internal/api/middleware"
	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

// sessionUser reconstructs the authenticated user from the claims the
// session middleware injected, or nil for an anonymous request.
func sessionUser(c echo.Context) *domain.User {
	username, _ := c.Get(middleware.CtxUsername).(string)
	if username == "" {
		return nil
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	dealerID, _ := c.Get(middleware.CtxDealerID).(int)
	return &domain.User{
		Username: username,
		Role:     role,
		DealerID: dealerID,
	}
}
