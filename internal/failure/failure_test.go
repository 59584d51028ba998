package failure

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestError(t *testing.T) {
	Convey("Error formatting", t, func() {
		Convey("with cause", func() {
			err := New(Capture, "display 1", errors.New("permission denied"))
			So(err.Error(), ShouldEqual, "capture error: display 1: permission denied")
		})

		Convey("remote keeps the status code", func() {
			err := NewRemote("post events", 503, nil)
			So(err.Error(), ShouldEqual, "remote error: post events (status 503)")
			So(StatusCode(err), ShouldEqual, 503)
		})

		Convey("unknown kind", func() {
			err := &Error{}
			So(err.Error(), ShouldEqual, "unknown error")
		})
	})
}

func TestKindOf(t *testing.T) {
	Convey("KindOf and Is walk the chain", t, func() {
		cause := errors.New("disk full")
		err := fmt.Errorf("cycle: %w", New(Storage, "write", cause))

		So(KindOf(err), ShouldEqual, Storage)
		So(Is(err, Storage), ShouldBeTrue)
		So(Is(err, Transport), ShouldBeFalse)
		So(errors.Is(err, cause), ShouldBeTrue)
		So(StatusCode(err), ShouldEqual, 0)
	})

	Convey("plain errors have no kind", t, func() {
		So(KindOf(errors.New("x")), ShouldEqual, Kind(0))
		So(KindOf(nil), ShouldEqual, Kind(0))
	})

	Convey("Newf formats the cause", t, func() {
		err := Newf(Encoding, "webp", "stride %d < %d", 4, 8)
		So(err.Error(), ShouldEqual, "encoding error: webp: stride 4 < 8")
	})
}
