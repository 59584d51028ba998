// Package event defines the telemetry record sent to the collector.
package event

import (
	"time"

	"github.com/junsooki/aw-watcher-screenshot/internal/encoder"
)

// Data is the metadata of a screenshot event.
type Data struct {
	Format  string `json:"format"`
	Display int    `json:"display"`
}

// Event is one collector event. ID stays nil until the server assigns it,
// Duration is in seconds.
type Event struct {
	ID        *int64    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Duration  float64   `json:"duration"`
	Data      Data      `json:"data"`
	BlobData  Blob      `json:"blob_data,omitempty"`
}

// Build wraps an encoded frame as an instantaneous event stamped with its
// capture time.
func Build(frame *encoder.EncodedFrame) Event {
	return Event{
		Timestamp: frame.Timestamp.UTC(),
		Duration:  0,
		Data: Data{
			Format:  frame.Format,
			Display: frame.Display,
		},
		BlobData: Blob(frame.Data),
	}
}
