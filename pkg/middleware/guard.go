package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"

	"EduAgent/internal/apperr"
	"EduAgent/internal/auth"
)

const principalKey = "principal"

// Setup installs the process-wide echo middleware.
func Setup(e *echo.Echo) {
	e.Use(emw.Recover())
	e.Use(emw.CORSWithConfig(emw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
}

// Guard authenticates protected requests: extract the bearer token, verify
// it, resolve the principal, and hand it to the handler via the context.
type Guard struct {
	tokens   *auth.TokenService
	resolver auth.PrincipalResolver
}

func NewGuard(tokens *auth.TokenService, resolver auth.PrincipalResolver) *Guard {
	return &Guard{tokens: tokens, resolver: resolver}
}

func (g *Guard) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" {
			return apperr.JSON(c, apperr.New(apperr.KindTokenInvalid, "missing bearer token"))
		}

		claims, err := g.tokens.Verify(tokenString)
		if err != nil {
			return apperr.JSON(c, err)
		}

		principal, err := g.resolver.Resolve(c.Request().Context(), claims.Kind, claims.Subject)
		if err != nil {
			return apperr.JSON(c, err)
		}
		if principal == nil {
			// Token outlived the account it was issued for.
			return apperr.JSON(c, apperr.New(apperr.KindTokenInvalid, "unknown account"))
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

// RequireKind gates a route to one principal kind. It must run after
// Authenticate.
func (g *Guard) RequireKind(kind auth.Kind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if principal == nil {
				return apperr.JSON(c, apperr.New(apperr.KindTokenInvalid, "missing bearer token"))
			}
			if !principal.Can(kind) {
				return apperr.JSON(c, apperr.Forbidden(string(kind)+" access required"))
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal Authenticate stored on the context,
// or nil on an unguarded route.
func PrincipalFrom(c echo.Context) *auth.Principal {
	principal, _ := c.Get(principalKey).(*auth.Principal)
	return principal
}
