package transport

import (
	"context"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/junsooki/aw-watcher-screenshot/internal/event"
	"github.com/junsooki/aw-watcher-screenshot/internal/failure"
)

// RequestTimeout bounds one delivery round trip.
const RequestTimeout = 30 * time.Second

// HTTPDeliverer posts batches as a JSON array.
type HTTPDeliverer struct {
	client *resty.Client
	url    string
}

func NewHTTPDeliverer(ep Endpoint, log logrus.FieldLogger) *HTTPDeliverer {
	client := resty.New().
		SetTimeout(RequestTimeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")
	if log != nil {
		client.SetLogger(log)
	}
	if ep.Token != "" {
		client.SetAuthToken(ep.Token)
	}
	return &HTTPDeliverer{client: client, url: ep.EventsURL()}
}

func (d *HTTPDeliverer) Deliver(ctx context.Context, events []event.Event) error {
	op := "post " + d.url
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(events).
		Post(d.url)
	if err != nil {
		return failure.New(failure.Transport, op, err)
	}
	if !resp.IsSuccess() {
		return failure.NewRemote(op, resp.StatusCode(), errors.New(resp.Status()))
	}
	return nil
}
