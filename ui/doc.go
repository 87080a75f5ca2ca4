// Package ui provides the system tray interface for WARP Taskbar.
//
// The tray exposes the full warp-cli action set as a menu, polls the
// daemon for connection status, and swaps the icon to match both the
// connection state and the desktop appearance. Icon updates flow
// through a single goroutine so the tray never races on SetIcon.
package ui
