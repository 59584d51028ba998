package capture

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/kbinani/screenshot"

	"github.com/junsooki/aw-watcher-screenshot/internal/failure"
)

// Screen implements Enumerator and Capturer on top of the platform
// screenshot APIs.
type Screen struct {
	clock clockwork.Clock
}

// NewScreen creates a capturer that stamps frames with clock.
func NewScreen(clock clockwork.Clock) *Screen {
	return &Screen{clock: clock}
}

func (s *Screen) Enumerate(ctx context.Context) ([]Display, error) {
	if err := ctx.Err(); err != nil {
		return nil, failure.New(failure.Enumeration, "list displays", err)
	}
	if err := probeDisplayServer(); err != nil {
		return nil, failure.New(failure.Enumeration, "connect display server", err)
	}

	n := screenshot.NumActiveDisplays()
	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		displays = append(displays, Display{Index: i, Bounds: screenshot.GetDisplayBounds(i)})
	}
	return displays, nil
}

func (s *Screen) Capture(ctx context.Context, d Display) (*Frame, error) {
	op := fmt.Sprintf("display %d", d.Index)
	if err := ctx.Err(); err != nil {
		return nil, failure.New(failure.Capture, op, err)
	}
	if d.Bounds.Empty() {
		return nil, failure.Newf(failure.Capture, op, "empty bounds %v", d.Bounds)
	}

	img, err := screenshot.CaptureRect(d.Bounds)
	if err != nil {
		return nil, failure.New(failure.Capture, op, err)
	}
	return &Frame{
		Image:     img,
		Display:   d.Index,
		Timestamp: s.clock.Now(),
	}, nil
}
