// Package platform sends desktop notifications through the host's native
// notification service.
package platform

import "time"

// AppName identifies the sender to notification daemons.
const AppName = "pixelpad"

// DefaultTimeout is how long a notification stays visible where the
// platform lets the sender choose.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown alongside the
	// notification if the platform supports it.
	IconPath string
	// Timeout overrides DefaultTimeout. Zero keeps the default.
	Timeout time.Duration
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
