package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/portal/core/conversation"
)

const sessionKey = "session"

// sessionMiddleware checks that the `:id` conversation exists and stores its id in the context.
func sessionMiddleware(svc *conversation.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Param("id")
			if _, err := svc.Snapshot(id); err != nil {
				return err
			}
			ctx.Set(sessionKey, id)
			return next(ctx)
		}
	}
}
