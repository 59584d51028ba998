package config

import (
	"errors"
	"io"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/junsooki/aw-watcher-screenshot/internal/transport"
)

func host(name string) func() (string, error) {
	return func() (string, error) { return name, nil }
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("applies defaults", func() {
			cfg, err := Parse(nil, io.Discard, host("desk"))
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, &Config{
				Scheme:   "http",
				Server:   "localhost",
				Port:     5666,
				Interval: 5 * time.Second,
				Bucket:   "aw-watcher-screenshot_desk",
			})
			So(cfg.Endpoint().EventsURL(), ShouldEqual, "http://localhost:5666/api/0/buckets/aw-watcher-screenshot_desk/events")
		})

		Convey("reads every flag", func() {
			cfg, err := Parse([]string{
				"-v", "-s", "collector.lan", "-p", "5600",
				"--auth-token", "tok", "--device-id", "laptop", "-t", "30",
			}, io.Discard, host("desk"))
			So(err, ShouldBeNil)
			So(cfg.Verbose, ShouldBeTrue)
			So(cfg.Interval, ShouldEqual, 30*time.Second)
			So(cfg.Endpoint(), ShouldResemble, transport.Endpoint{
				Scheme: "http",
				Host:   "collector.lan",
				Port:   5600,
				Bucket: "aw-watcher-screenshot_laptop",
				Token:  "tok",
			})
		})

		Convey("takes the scheme from the server", func() {
			cfg, err := Parse([]string{"--server", "HTTPS://collector.example/"}, io.Discard, host("desk"))
			So(err, ShouldBeNil)
			So(cfg.Scheme, ShouldEqual, "https")
			So(cfg.Server, ShouldEqual, "collector.example")

			cfg, err = Parse([]string{"--server", "ws://relay"}, io.Discard, host("desk"))
			So(err, ShouldBeNil)
			So(cfg.Scheme, ShouldEqual, "ws")
		})

		Convey("falls back when the hostname is unavailable", func() {
			cfg, err := Parse(nil, io.Discard, func() (string, error) { return "", errors.New("no uts") })
			So(err, ShouldBeNil)
			So(cfg.Bucket, ShouldEqual, "aw-watcher-screenshot_unknown")
		})

		Convey("rejects bad values", func() {
			_, err := Parse([]string{"-t", "0"}, io.Discard, host("desk"))
			So(err, ShouldNotBeNil)

			_, err = Parse([]string{"-s", "ftp://x"}, io.Discard, host("desk"))
			So(err, ShouldNotBeNil)

			_, err = Parse([]string{"-s", "http://"}, io.Discard, host("desk"))
			So(err, ShouldNotBeNil)

			_, err = Parse([]string{"-p", "70000"}, io.Discard, host("desk"))
			So(err, ShouldNotBeNil)

			_, err = Parse([]string{"--nope"}, io.Discard, host("desk"))
			So(err, ShouldNotBeNil)
		})

		Convey("reports a version request", func() {
			_, err := Parse([]string{"--version"}, io.Discard, host("desk"))
			So(err, ShouldEqual, ErrVersion)
		})
	})
}
