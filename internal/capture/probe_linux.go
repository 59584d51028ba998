//go:build linux

package capture

import "github.com/jezek/xgb"

// probeDisplayServer fails when no X server is reachable. The screenshot
// package reports zero displays in that case, which would hide the outage.
func probeDisplayServer() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	conn.Close()
	return nil
}
