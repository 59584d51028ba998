package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/junsooki/aw-watcher-screenshot/internal/event"
	"github.com/junsooki/aw-watcher-screenshot/internal/failure"
)

// WebSocketDeliverer opens one connection per batch, sends the batch as a
// single JSON text message and closes normally.
type WebSocketDeliverer struct {
	dialer *websocket.Dialer
	url    string
	header http.Header
}

func NewWebSocketDeliverer(ep Endpoint) *WebSocketDeliverer {
	header := http.Header{}
	if ep.Token != "" {
		header.Set("Authorization", "Bearer "+ep.Token)
	}
	dialer := *websocket.DefaultDialer
	return &WebSocketDeliverer{
		dialer: &dialer,
		url:    ep.EventsURL(),
		header: header,
	}
}

func (d *WebSocketDeliverer) Deliver(ctx context.Context, events []event.Event) error {
	op := "send " + d.url

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	conn, resp, err := d.dialer.DialContext(ctx, d.url, d.header)
	if err != nil {
		if resp != nil {
			return failure.NewRemote(op, resp.StatusCode, err)
		}
		return failure.New(failure.Transport, op, err)
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	conn.SetWriteDeadline(deadline)
	if err := conn.WriteJSON(events); err != nil {
		return failure.New(failure.Transport, op, err)
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return nil
}
