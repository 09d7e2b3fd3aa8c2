package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/api/metrics"
	"github.com/gymclub/booking-system/internal/core/domain"
)

// RBAC enforces role-based access control on routes already behind Auth. The
// role is read from the token snapshot: a promotion after issuance is not
// honoured until the user logs in again. The rejection message is distinct
// from the unauthenticated one so clients (and tests) can tell them apart.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(identityKey).(domain.Identity)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("role_mismatch").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.AuthFailuresTotal.WithLabelValues("role_mismatch").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "You have no permission to do that")
			}
			return next(c)
		}
	}
}
