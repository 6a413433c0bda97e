package echoapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/portal/core/conversation"
	logsvc "github.com/trezcool/portal/services/logger"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// stream pushes the session snapshot to a websocket after every change, starting with the current one.
// A slow client skips intermediate snapshots and always receives the latest one.
// The stream ends when the session is closed.
func (api *conversationApi) stream(ctx echo.Context) error {
	id := sessionID(ctx)

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return nil // the upgrader already replied
	}
	defer func() { _ = conn.Close() }()

	done, err := api.svc.Done(id)
	if err != nil {
		return nil
	}

	// latest wins: a pending snapshot is replaced by the newer one
	snaps := make(chan conversation.Snapshot, 1)
	cancel, err := api.svc.Subscribe(id, func(s conversation.Snapshot) {
		select {
		case <-snaps:
		default:
		}
		select {
		case snaps <- s:
		default:
		}
	})
	if err != nil {
		return nil
	}
	defer cancel()

	// the read loop only detects the client going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	snap, err := api.svc.Snapshot(id)
	if err != nil {
		return nil
	}
	for {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(sessionResponse{ID: id, Snapshot: snap}); err != nil {
			api.logger.Warn("writing snapshot", err, logsvc.Session(id))
			return nil
		}

		select {
		case snap = <-snaps:
		case <-closed:
			return nil
		case <-done:
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "conversation closed")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return nil
		}
	}
}
