package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/api/middleware"
	"github.com/gymclub/booking-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. A handler behind Auth should never see
// an empty identity; hitting this means the route is miswired.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.Email == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}
	return identity, nil
}
