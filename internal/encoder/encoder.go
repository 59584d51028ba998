package encoder

import (
	"fmt"
	"time"

	"github.com/junsooki/aw-watcher-screenshot/internal/capture"
	"github.com/junsooki/aw-watcher-screenshot/internal/failure"
)

// EncodedFrame is a compressed capture. It is not modified after Encode
// returns it.
type EncodedFrame struct {
	Data      []byte
	Format    string
	Ext       string
	Display   int
	Timestamp time.Time
}

// Encoder encodes a captured frame into bytes.
type Encoder interface {
	Encode(frame *capture.Frame) (*EncodedFrame, error)
	Format() string
}

// validate rejects pixel buffers whose stride or length cannot describe
// the image rectangle.
func validate(frame *capture.Frame) error {
	if frame == nil || frame.Image == nil {
		return fmt.Errorf("nil image")
	}
	img := frame.Image
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("empty bounds %v", b)
	}
	minStride := b.Dx() * 4
	if img.Stride < minStride {
		return fmt.Errorf("stride %d smaller than row size %d", img.Stride, minStride)
	}
	need := (b.Dy()-1)*img.Stride + minStride
	if len(img.Pix) < need {
		return fmt.Errorf("pixel buffer has %d bytes, need %d", len(img.Pix), need)
	}
	return nil
}

func invalid(frame *capture.Frame, format string, err error) error {
	op := format
	if frame != nil {
		op = fmt.Sprintf("%s display %d", format, frame.Display)
	}
	return failure.New(failure.Encoding, op, err)
}
