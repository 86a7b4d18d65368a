package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meewoo-banking/internal/domain/errs"
	"meewoo-banking/internal/usecase/identity"
)

const principalKey = "auth.principal"

// BasicAuth authenticates every request against the account directory and
// stores the resulting principal on the echo context.
func BasicAuth(dir *identity.Directory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, pass, ok := c.Request().BasicAuth()
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="meewoo-banking"`)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "credentials required"})
			}
			p, err := dir.Authenticate(c.Request().Context(), user, pass)
			if err != nil {
				if errs.KindOf(err) == errs.KindAuth {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "authentication failed"})
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// PrincipalFrom returns the authenticated principal stored by BasicAuth.
func PrincipalFrom(c echo.Context) (identity.Principal, bool) {
	p, ok := c.Get(principalKey).(identity.Principal)
	return p, ok
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		if !ok || !p.IsAdmin() {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "admin access required"})
		}
		return next(c)
	}
}

func RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		if !ok || p.Kind != identity.KindCustomer {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "customer access required"})
		}
		return next(c)
	}
}

// RequireStaff admits employees and admins; teller endpoints use it.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		if !ok || !p.IsStaff() {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "staff access required"})
		}
		return next(c)
	}
}
