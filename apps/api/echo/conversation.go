package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/conversation"
)

type sessionResponse struct {
	ID string `json:"id"`
	conversation.Snapshot
}

type conversationApi struct {
	svc      *conversation.Service
	validate *validator.Validate
	logger   core.Logger
}

func registerConversationAPI(g *echo.Group, svc *conversation.Service, validate *validator.Validate, logger core.Logger) {
	api := conversationApi{svc: svc, validate: validate, logger: logger}

	cg := g.Group("/conversations")
	cg.POST("", api.create)

	// detail endpoints
	dg := cg.Group("/:id", sessionMiddleware(svc))
	dg.GET("", api.retrieve)
	dg.DELETE("", api.destroy)
	dg.POST("/chat", api.openChat)
	dg.DELETE("/chat", api.closeChat)
	dg.POST("/call", api.startCall)
	dg.DELETE("/call", api.endCall)
	dg.POST("/messages", api.sendMessage)
	dg.POST("/mute", api.toggleMute)
	dg.POST("/camera", api.toggleCamera)
	dg.GET("/ws", api.stream)
}

func sessionID(ctx echo.Context) string {
	id, _ := ctx.Get(sessionKey).(string)
	return id
}

// respond writes the snapshot of the current session.
func respond(ctx echo.Context, snap conversation.Snapshot, err error) error {
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sessionResponse{ID: sessionID(ctx), Snapshot: snap})
}

// Handlers

func (api *conversationApi) create(ctx echo.Context) error {
	id, snap := api.svc.OpenSession()
	return ctx.JSON(http.StatusCreated, sessionResponse{ID: id, Snapshot: snap})
}

func (api *conversationApi) retrieve(ctx echo.Context) error {
	snap, err := api.svc.Snapshot(sessionID(ctx))
	return respond(ctx, snap, err)
}

func (api *conversationApi) destroy(ctx echo.Context) error {
	if err := api.svc.CloseSession(sessionID(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *conversationApi) openChat(ctx echo.Context) error {
	var data conversation.ChatInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to conversation.ChatInput")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}
	snap, err := api.svc.OpenChat(ctx.Request().Context(), sessionID(ctx), data)
	return respond(ctx, snap, err)
}

func (api *conversationApi) closeChat(ctx echo.Context) error {
	snap, err := api.svc.CloseChat(sessionID(ctx))
	return respond(ctx, snap, err)
}

func (api *conversationApi) startCall(ctx echo.Context) error {
	var data conversation.CallInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to conversation.CallInput")
	}
	data.Mode = core.CleanString(data.Mode, true /* lower */)
	if err := api.validate.Struct(data); err != nil {
		return err
	}
	snap, err := api.svc.StartCall(ctx.Request().Context(), sessionID(ctx), data)
	return respond(ctx, snap, err)
}

func (api *conversationApi) endCall(ctx echo.Context) error {
	snap, err := api.svc.EndCall(sessionID(ctx))
	return respond(ctx, snap, err)
}

func (api *conversationApi) sendMessage(ctx echo.Context) error {
	var data conversation.MessageInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to conversation.MessageInput")
	}
	snap, err := api.svc.SendMessage(sessionID(ctx), data)
	return respond(ctx, snap, err)
}

func (api *conversationApi) toggleMute(ctx echo.Context) error {
	snap, err := api.svc.ToggleMute(sessionID(ctx))
	return respond(ctx, snap, err)
}

func (api *conversationApi) toggleCamera(ctx echo.Context) error {
	snap, err := api.svc.ToggleCamera(sessionID(ctx))
	return respond(ctx, snap, err)
}
