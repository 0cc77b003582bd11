package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskly/task-api/internal/api/middleware"
	"github.com/taskly/task-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. An empty
// user id means the middleware did not run on this route; the request is
// rejected with 401 before any service call.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication identity")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	name, _ := c.Get(middleware.CtxName).(string)

	return domain.Identity{UserID: userID, Email: email, Name: name}, nil
}
