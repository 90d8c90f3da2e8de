package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/argomobile/studio-api/internal/api/metrics"
	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// Auth validates the JWT and injects the authenticated principal into
// context. When a revoker is provided, tokens revoked by logout are
// rejected; a nil revoker skips the check.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// Numeric JSON claims decode as float64.
			rawID, ok := claims["user_id"].(float64)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing identity")
			}
			role, _ := claims["role"].(string)
			if role == "" {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing role")
			}

			if revoker != nil {
				jti, _ := claims["jti"].(string)
				if jti != "" {
					revoked, err := revoker.IsRevoked(c.Request().Context(), jti)
					if err != nil {
						return echo.NewHTTPError(http.StatusServiceUnavailable, "authorization check unavailable")
					}
					if revoked {
						metrics.AuthFailuresTotal.WithLabelValues("revoked_token").Inc()
						return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
					}
				}
			}

			c.Set("principal", domain.Principal{ID: int64(rawID), Role: role})
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
