package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		var buf bytes.Buffer

		Convey("logs at info by default", func() {
			log := New(&buf, false)
			So(log.GetLevel(), ShouldEqual, logrus.InfoLevel)
			log.Debug("hidden")
			log.WithField("display", 1).Info("captured")
			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, "display=1")
		})

		Convey("verbose enables debug", func() {
			log := New(&buf, true)
			So(log.GetLevel(), ShouldEqual, logrus.DebugLevel)
			log.Debug("shown")
			So(buf.String(), ShouldContainSubstring, "shown")
		})
	})
}
