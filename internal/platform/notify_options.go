package platform

import "time"

// DefaultAppName identifies the sender to the notification service.
const DefaultAppName = "easymark"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName overrides DefaultAppName.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout is how long the notification stays visible. Zero leaves it to
	// the platform.
	Timeout time.Duration
	// Transient asks the notification server not to keep the message in its
	// history.
	Transient bool
}

func (o Options) appName() string {
	if o.AppName != "" {
		return o.AppName
	}
	return DefaultAppName
}
