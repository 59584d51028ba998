// Package pipeline runs one capture cycle: enumerate displays, capture and
// encode each one independently, archive the results, and deliver the
// successful captures as a single batch.
package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/junsooki/aw-watcher-screenshot/internal/capture"
	"github.com/junsooki/aw-watcher-screenshot/internal/encoder"
	"github.com/junsooki/aw-watcher-screenshot/internal/event"
	"github.com/junsooki/aw-watcher-screenshot/internal/failure"
	"github.com/junsooki/aw-watcher-screenshot/internal/transport"
)

// MaxParallel caps the number of displays processed at once.
const MaxParallel = 4

// Archiver stores an encoded frame and returns where it went.
type Archiver interface {
	Archive(frame *encoder.EncodedFrame) (string, error)
}

// Pipeline wires the stages of one cycle.
type Pipeline struct {
	Enumerator capture.Enumerator
	Capturer   capture.Capturer
	Encoder    encoder.Encoder
	Archiver   Archiver
	Deliverer  transport.Deliverer
	Log        logrus.FieldLogger
}

// DisplayResult is the outcome of one display's unit of work. Err is set
// when capture or encoding failed, in which case no event was built.
type DisplayResult struct {
	Display    capture.Display
	Event      *event.Event
	Path       string
	Err        error
	ArchiveErr error
}

// Report summarizes a cycle.
type Report struct {
	EnumerateErr error
	Displays     []DisplayResult
	Events       []event.Event
	// Delivered is false when delivery failed or was skipped.
	Delivered   bool
	DeliveryErr error
}

// Archived counts the frames written to local storage.
func (r *Report) Archived() int {
	n := 0
	for _, d := range r.Displays {
		if d.Path != "" {
			n++
		}
	}
	return n
}

// RunCycle executes one cycle. It never returns an error: every stage
// failure is logged and recorded in the report.
func (p *Pipeline) RunCycle(ctx context.Context) *Report {
	report := &Report{}

	displays, err := p.Enumerator.Enumerate(ctx)
	if err != nil {
		report.EnumerateErr = err
		p.Log.WithField("stage", failure.Enumeration).Errorf("enumerate displays: %v", err)
		return report
	}
	p.Log.Debugf("found %d displays", len(displays))

	report.Displays = make([]DisplayResult, len(displays))
	var g errgroup.Group
	g.SetLimit(MaxParallel)
	for i, d := range displays {
		report.Displays[i].Display = d
		i := i
		g.Go(func() error {
			p.processDisplay(ctx, &report.Displays[i])
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range report.Displays {
		if res.Event != nil {
			report.Events = append(report.Events, *res.Event)
		}
	}

	if len(report.Events) == 0 {
		p.Log.Info("no screenshots captured, skipping delivery")
		return report
	}

	if err := p.Deliverer.Deliver(ctx, report.Events); err != nil {
		report.DeliveryErr = err
		p.Log.WithFields(logrus.Fields{
			"stage":  failure.KindOf(err),
			"events": len(report.Events),
			"status": failure.StatusCode(err),
		}).Errorf("deliver events: %v", err)
		return report
	}
	report.Delivered = true
	p.Log.WithField("events", len(report.Events)).Info("delivered screenshot events")
	return report
}

// processDisplay only touches its own result slot. A panic in any stage is
// recorded as a capture failure for this display alone.
func (p *Pipeline) processDisplay(ctx context.Context, res *DisplayResult) {
	log := p.Log.WithField("display", res.Display.Index)
	defer func() {
		if r := recover(); r != nil {
			res.Event = nil
			res.Err = failure.Newf(failure.Capture, fmt.Sprintf("display %d", res.Display.Index), "panic: %v", r)
			log.WithField("stage", failure.Capture).Errorf("display worker panicked: %v", r)
		}
	}()
	log.Debugf("capturing %s", res.Display)

	frame, err := p.Capturer.Capture(ctx, res.Display)
	if err != nil {
		res.Err = err
		log.WithField("stage", failure.KindOf(err)).Errorf("capture: %v", err)
		return
	}

	encoded, err := p.Encoder.Encode(frame)
	if err != nil {
		res.Err = err
		log.WithField("stage", failure.KindOf(err)).Errorf("encode: %v", err)
		return
	}

	// Archiving and delivery are independent sinks of the same frame.
	path, err := p.Archiver.Archive(encoded)
	if err != nil {
		res.ArchiveErr = err
		log.WithField("stage", failure.KindOf(err)).Errorf("archive: %v", err)
	} else {
		res.Path = path
		log.Debugf("saved %s", path)
	}

	ev := event.Build(encoded)
	res.Event = &ev
}
