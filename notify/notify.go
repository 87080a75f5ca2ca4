// Package notify sends desktop notifications for connection events.
// It talks to the org.freedesktop.Notifications service over the session
// bus, which covers every desktop environment the theme probes know about.
package notify

import (
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/SurajRaika/warp-taskbar/common"
)

const (
	notifierService = "org.freedesktop.Notifications"
	notifierPath    = "/org/freedesktop/Notifications"
	notifierMethod  = "org.freedesktop.Notifications.Notify"
)

// Notification represents a desktop notification.
type Notification struct {
	Title   string
	Message string
	// Icon is a freedesktop icon name, e.g. "network-vpn".
	Icon string
}

// Send delivers a notification over the session bus.
func Send(n Notification) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return common.WrapError(err, "connect session bus")
	}
	defer conn.Close()

	// Arguments follow the Notify signature: app_name, replaces_id,
	// app_icon, summary, body, actions, hints, expire_timeout.
	obj := conn.Object(notifierService, dbus.ObjectPath(notifierPath))
	call := obj.Call(notifierMethod, 0,
		common.AppName,
		uint32(0),
		n.Icon,
		n.Title,
		n.Message,
		[]string{},
		map[string]dbus.Variant{},
		int32(common.NotifyTimeout/time.Millisecond),
	)
	if call.Err != nil {
		return common.WrapError(call.Err, "notify call")
	}
	return nil
}

// show delivers a notification and logs failures without propagating them.
func show(n Notification) {
	if err := Send(n); err != nil {
		common.LogWarn("Could not show notification %q: %v", n.Title, err)
	}
}

// Connected announces that the WARP tunnel came up.
func Connected() {
	show(Notification{
		Title:   "WARP Connected",
		Message: "Your traffic is routed through Cloudflare WARP",
		Icon:    "network-vpn",
	})
}

// Disconnected announces that the WARP tunnel went down.
func Disconnected() {
	show(Notification{
		Title:   "WARP Disconnected",
		Message: "Your traffic is no longer routed through WARP",
		Icon:    "network-vpn-disconnected",
	})
}
