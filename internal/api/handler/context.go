package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the claims injected by the Auth middleware and
// fast-fails before any service call: a missing user id means the guard did
// not run (or the token carried no subject), so the request is unusable even
// though it reached the handler.
func ctxIdentity(c echo.Context) (id, role string, err error) {
	id, _ = c.Get("user_id").(string)
	if id == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return id, role, nil
}
