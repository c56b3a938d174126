//go:build linux

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsName = "org.freedesktop.Notifications"
	notificationsPath = "/org/freedesktop/Notifications"
)

// Notify sends a desktop notification using the Freedesktop.org notification spec.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(notificationsName, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notificationsName+".Notify", 0,
		opts.appName(), uint32(0), opts.IconPath, title, body, []string{}, hints(opts), expireMillis(opts))
	return call.Err
}

func hints(opts Options) map[string]dbus.Variant {
	h := map[string]dbus.Variant{}
	if opts.Transient {
		h["transient"] = dbus.MakeVariant(true)
	}
	return h
}

// expireMillis maps Timeout to the expire_timeout argument, where -1 means
// the server default.
func expireMillis(opts Options) int32 {
	if opts.Timeout <= 0 {
		return -1
	}
	return int32(opts.Timeout.Milliseconds())
}
