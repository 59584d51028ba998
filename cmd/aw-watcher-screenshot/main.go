package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"

	"github.com/junsooki/aw-watcher-screenshot/internal/archive"
	"github.com/junsooki/aw-watcher-screenshot/internal/capture"
	"github.com/junsooki/aw-watcher-screenshot/internal/config"
	"github.com/junsooki/aw-watcher-screenshot/internal/encoder"
	"github.com/junsooki/aw-watcher-screenshot/internal/logging"
	"github.com/junsooki/aw-watcher-screenshot/internal/permissions"
	"github.com/junsooki/aw-watcher-screenshot/internal/pipeline"
	"github.com/junsooki/aw-watcher-screenshot/internal/scheduler"
	"github.com/junsooki/aw-watcher-screenshot/internal/transport"
)

const version = "0.1.0"

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		switch {
		case errors.Is(err, config.ErrVersion):
			fmt.Printf("aw-watcher-screenshot %s\n", version)
			return
		case errors.Is(err, pflag.ErrHelp):
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log := logging.New(os.Stderr, cfg.Verbose)
	ep := cfg.Endpoint()

	log.Infof("aw-watcher-screenshot %s starting", version)
	log.Infof("  Endpoint:  %s", ep.EventsURL())
	log.Infof("  Interval:  %s", cfg.Interval)
	log.Infof("  Archive:   %s", archive.DefaultDir)
	if cfg.DeviceID != "" {
		log.Infof("  Device:    %s", cfg.DeviceID)
	}

	// Captures fail until the permission is granted; keep running so the
	// probe recovers without a restart once it is.
	if !permissions.HasScreenRecording() {
		log.Warn("Screen Recording permission not granted. Requesting...")
		permissions.RequestScreenRecording()
	}

	deliverer, err := transport.New(ep, log)
	if err != nil {
		log.Fatalf("transport init: %v", err)
	}

	clock := clockwork.NewRealClock()
	screen := capture.NewScreen(clock)
	p := &pipeline.Pipeline{
		Enumerator: screen,
		Capturer:   screen,
		Encoder:    encoder.NewWebPEncoder(encoder.DefaultQuality),
		Archiver:   archive.New(archive.DefaultDir),
		Deliverer:  deliverer,
		Log:        log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(clock, cfg.Interval, log)
	sched.Run(ctx, func(ctx context.Context) {
		p.RunCycle(ctx)
	})
	log.Infof("Shutting down after %d cycles", sched.Cycles())
}
