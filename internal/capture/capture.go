package capture

import (
	"context"
	"fmt"
	"image"
	"time"
)

// Display is one attached output found by an enumeration pass. Index is
// only stable within that pass.
type Display struct {
	Index  int
	Bounds image.Rectangle
}

func (d Display) String() string {
	return fmt.Sprintf("display %d (%dx%d+%d+%d)", d.Index,
		d.Bounds.Dx(), d.Bounds.Dy(), d.Bounds.Min.X, d.Bounds.Min.Y)
}

// Frame represents a captured screen frame.
type Frame struct {
	Image     *image.RGBA
	Display   int
	Timestamp time.Time
}

// Enumerator lists the currently attached displays.
type Enumerator interface {
	Enumerate(ctx context.Context) ([]Display, error)
}

// Capturer reads one snapshot of a display.
type Capturer interface {
	Capture(ctx context.Context, d Display) (*Frame, error)
}
