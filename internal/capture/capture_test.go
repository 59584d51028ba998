package capture

import (
	"context"
	"image"
	"testing"

	"github.com/jonboulle/clockwork"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/junsooki/aw-watcher-screenshot/internal/failure"
)

func TestDisplayString(t *testing.T) {
	Convey("Display describes index and geometry", t, func() {
		d := Display{Index: 1, Bounds: image.Rect(1920, 0, 3840, 1080)}
		So(d.String(), ShouldEqual, "display 1 (1920x1080+1920+0)")
	})
}

func TestScreenCaptureErrors(t *testing.T) {
	Convey("Screen.Capture", t, func() {
		s := NewScreen(clockwork.NewFakeClock())

		Convey("rejects a display with empty bounds", func() {
			_, err := s.Capture(context.Background(), Display{Index: 3})
			So(failure.Is(err, failure.Capture), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "display 3")
		})

		Convey("honours a cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := s.Capture(ctx, Display{Index: 0, Bounds: image.Rect(0, 0, 10, 10)})
			So(failure.Is(err, failure.Capture), ShouldBeTrue)

			_, err = s.Enumerate(ctx)
			So(failure.Is(err, failure.Enumeration), ShouldBeTrue)
		})
	})
}
