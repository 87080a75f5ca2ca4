// Package common provides shared constants, types, and utilities
// used across the WARP Taskbar application.
package common

import "time"

// Application metadata.
const (
	// AppName is the display name of the application.
	AppName = "WARP Taskbar"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "warp-taskbar"
)

// File names used by the application.
const (
	ConfigFileName   = "config.yaml"
	CommandsFileName = "commands.json"
	LogFileName      = "warp-taskbar.log"
)

// WarpCommand is the external VPN control binary. All tray actions and
// status polling go through this command.
const WarpCommand = "warp-cli"

// Default intervals.
const (
	// PollInterval is how often the tray re-checks connection status
	// and desktop appearance.
	PollInterval = 2 * time.Second
	// NotifyTimeout is how long desktop notifications stay visible.
	NotifyTimeout = 5 * time.Second
)

// UI constants.
const (
	// TrayIconSize is the size of the system tray icon in pixels.
	TrayIconSize = 22
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
