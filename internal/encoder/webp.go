package encoder

import (
	"bytes"

	"github.com/chai2010/webp"

	"github.com/junsooki/aw-watcher-screenshot/internal/capture"
)

const (
	FormatWebP = "webp"

	// DefaultQuality keeps text on screen legible at a fraction of PNG size.
	DefaultQuality = 80
)

// WebPEncoder encodes frames as lossy WebP.
type WebPEncoder struct {
	quality float32
}

// NewWebPEncoder creates a WebP encoder with the given quality (1-100).
func NewWebPEncoder(quality int) *WebPEncoder {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	return &WebPEncoder{quality: float32(quality)}
}

func (e *WebPEncoder) Format() string {
	return FormatWebP
}

func (e *WebPEncoder) Encode(frame *capture.Frame) (*EncodedFrame, error) {
	if err := validate(frame); err != nil {
		return nil, invalid(frame, FormatWebP, err)
	}

	var buf bytes.Buffer
	buf.Grow(256 * 1024) // pre-allocate 256KB
	err := webp.Encode(&buf, frame.Image, &webp.Options{Quality: e.quality})
	if err != nil {
		return nil, invalid(frame, FormatWebP, err)
	}
	return &EncodedFrame{
		Data:      buf.Bytes(),
		Format:    FormatWebP,
		Ext:       "webp",
		Display:   frame.Display,
		Timestamp: frame.Timestamp,
	}, nil
}
