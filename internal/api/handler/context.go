package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// ctxPrincipal extracts the authenticated principal injected by the Auth
// middleware. Its presence proves the middleware ran; a route wired
// without it is a bug, so the check fails closed with 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get("principal").(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
