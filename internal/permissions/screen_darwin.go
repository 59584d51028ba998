// Package permissions checks the OS grants screen capture depends on.
package permissions

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

// Available since macOS 10.15. Without the grant, captures return only the
// desktop wallpaper or fail outright.
static int preflightScreenCapture() {
    return CGPreflightScreenCaptureAccess() ? 1 : 0;
}

static int requestScreenCapture() {
    return CGRequestScreenCaptureAccess() ? 1 : 0;
}
*/
import "C"

// HasScreenRecording reports whether the process may capture displays.
func HasScreenRecording() bool {
	return C.preflightScreenCapture() != 0
}

// RequestScreenRecording asks macOS to show the grant dialog once. It
// returns true when access was already granted.
func RequestScreenRecording() bool {
	return C.requestScreenCapture() != 0
}
