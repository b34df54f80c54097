package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onlineshop/shop-system/internal/core/domain"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: username and role must
// both be present (presence proves the middleware ran).
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	if username == "" || role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return ports.Identity{Username: username, Role: domain.Role(role)}, nil
}
