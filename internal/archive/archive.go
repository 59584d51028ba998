// Package archive keeps a local copy of every encoded capture.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/junsooki/aw-watcher-screenshot/internal/encoder"
	"github.com/junsooki/aw-watcher-screenshot/internal/failure"
)

// DefaultDir is relative to the working directory of the process.
const DefaultDir = "target/screenshots"

// TimeLayout has second granularity; the display index disambiguates
// captures taken within the same second.
const TimeLayout = "2006-01-02_15-04-05"

// Archiver writes encoded frames into a directory.
type Archiver struct {
	dir string
}

func New(dir string) *Archiver {
	return &Archiver{dir: dir}
}

func (a *Archiver) Dir() string {
	return a.dir
}

// Name returns the file name used for frame.
func Name(frame *encoder.EncodedFrame) string {
	return frame.Timestamp.Local().Format(TimeLayout) + "_" + strconv.Itoa(frame.Display) + "." + frame.Ext
}

// Archive writes frame and returns its path. An existing file with the same
// name is never overwritten.
func (a *Archiver) Archive(frame *encoder.EncodedFrame) (string, error) {
	name := Name(frame)
	op := fmt.Sprintf("write %s", name)

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", failure.New(failure.Storage, op, err)
	}

	path := filepath.Join(a.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", failure.New(failure.Storage, op, err)
	}
	if _, err := f.Write(frame.Data); err != nil {
		f.Close()
		os.Remove(path)
		return "", failure.New(failure.Storage, op, err)
	}
	if err := f.Close(); err != nil {
		return "", failure.New(failure.Storage, op, err)
	}
	return path, nil
}
