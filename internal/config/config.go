package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/junsooki/aw-watcher-screenshot/internal/transport"
)

// BucketPrefix names the collector bucket; the device id or hostname is
// appended.
const BucketPrefix = "aw-watcher-screenshot_"

// ErrVersion is returned by Parse when --version was requested.
var ErrVersion = errors.New("version requested")

// Config holds all runtime configuration. It is built once by Parse and not
// modified afterwards.
type Config struct {
	Verbose   bool
	Scheme    string
	Server    string
	Port      uint16
	AuthToken string
	DeviceID  string
	Interval  time.Duration
	Bucket    string
}

// Endpoint returns the collector location derived from the flags.
func (c *Config) Endpoint() transport.Endpoint {
	return transport.Endpoint{
		Scheme: c.Scheme,
		Host:   c.Server,
		Port:   c.Port,
		Bucket: c.Bucket,
		Token:  c.AuthToken,
	}
}

// Parse parses the command line (without the program name). hostname is
// used for the bucket when no device id is given.
func Parse(args []string, stderr io.Writer, hostname func() (string, error)) (*Config, error) {
	var (
		cfg      Config
		interval uint16
		version  bool
	)

	fs := pflag.NewFlagSet("aw-watcher-screenshot", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every stage at debug level")
	fs.StringVarP(&cfg.Server, "server", "s", "localhost", "Collector host, optionally with a scheme (https://; ws:// or wss:// only for collectors that accept batches over WebSocket)")
	fs.Uint16VarP(&cfg.Port, "port", "p", 5666, "Collector port")
	fs.StringVar(&cfg.AuthToken, "auth-token", "", "Bearer token attached to every request")
	fs.StringVar(&cfg.DeviceID, "device-id", "", "Device identifier used to name the bucket (default: hostname)")
	fs.Uint16VarP(&interval, "time-interval", "t", 5, "Seconds between captures")
	fs.BoolVar(&version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if version {
		return nil, ErrVersion
	}

	if interval < 1 {
		return nil, fmt.Errorf("time-interval must be at least 1 second")
	}
	cfg.Interval = time.Duration(interval) * time.Second

	cfg.Scheme = "http"
	if scheme, host, ok := strings.Cut(cfg.Server, "://"); ok {
		cfg.Scheme = strings.ToLower(scheme)
		cfg.Server = strings.TrimSuffix(host, "/")
	}
	switch cfg.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported scheme %q in --server", cfg.Scheme)
	}
	if cfg.Server == "" {
		return nil, fmt.Errorf("--server must name a host")
	}

	device := cfg.DeviceID
	if device == "" {
		h, err := hostname()
		if err != nil || h == "" {
			h = "unknown"
		}
		device = h
	}
	cfg.Bucket = BucketPrefix + device

	return &cfg, nil
}

// ParseFlags parses os.Args for the watcher binary.
func ParseFlags() (*Config, error) {
	return Parse(os.Args[1:], os.Stderr, os.Hostname)
}
