//go:build !linux

package capture

func probeDisplayServer() error {
	return nil
}
