package transport

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/junsooki/aw-watcher-screenshot/internal/event"
)

// Deliverer sends one batch of events to the collector. A batch is either
// accepted as a whole or not at all.
type Deliverer interface {
	Deliver(ctx context.Context, events []event.Event) error
}

// Endpoint locates the collector bucket.
type Endpoint struct {
	Scheme string
	Host   string
	Port   uint16
	Bucket string
	// Token is sent as a bearer credential when set.
	Token string
}

// EventsURL returns the bucket's event collection URL.
func (e Endpoint) EventsURL() string {
	u := url.URL{
		Scheme: e.Scheme,
		Host:   net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port))),
		Path:   "/api/0/buckets/" + e.Bucket + "/events",
	}
	return u.String()
}

// New picks the deliverer matching the endpoint scheme.
func New(ep Endpoint, log logrus.FieldLogger) (Deliverer, error) {
	switch ep.Scheme {
	case "http", "https":
		return NewHTTPDeliverer(ep, log), nil
	case "ws", "wss":
		return NewWebSocketDeliverer(ep), nil
	default:
		return nil, fmt.Errorf("unsupported scheme %q", ep.Scheme)
	}
}
