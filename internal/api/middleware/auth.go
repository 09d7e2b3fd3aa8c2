package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gymclub/booking-system/internal/api/metrics"
	"github.com/gymclub/booking-system/internal/auth"
	"github.com/gymclub/booking-system/internal/core/domain"
)

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// IdentityFrom returns the identity injected by Auth, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// Auth extracts and verifies the bearer token and injects the identity
// snapshot into the request context. Header presence is checked before the
// scheme, and the scheme before the signature, so a request failing an
// earlier check never reaches a later one. All failures are 403 with a
// generic message so callers cannot distinguish a missing token from a
// forged one.
func Auth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
			}

			identity, ok := tokens.Verify(parts[1])
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
			}

			c.Set(identityKey, *identity)

			return next(c)
		}
	}
}
