//go:build linux

package capture

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/junsooki/aw-watcher-screenshot/internal/failure"
)

func TestEnumerateWithoutDisplayServer(t *testing.T) {
	Convey("Enumerate fails when no X server is configured", t, func() {
		t.Setenv("DISPLAY", "")

		displays, err := NewScreen(clockwork.NewFakeClock()).Enumerate(context.Background())
		So(displays, ShouldBeNil)
		So(failure.Is(err, failure.Enumeration), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "connect display server")
	})
}
