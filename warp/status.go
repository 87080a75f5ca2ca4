// Package warp wraps the Cloudflare WARP command-line client.
// This file contains the pure status classification logic, kept separate
// from process spawning so it can be unit tested on captured output.
package warp

import "strings"

// DisconnectedMarker is the substring warp-cli prints in its status output
// while the tunnel is down.
const DisconnectedMarker = "Status update: Disconnected"

// ConnectionState is the transient connection state derived from a single
// status poll. It is never persisted between ticks.
type ConnectionState int

const (
	// StateUnknown indicates the status probe itself failed.
	StateUnknown ConnectionState = iota
	// StateDisconnected indicates the tunnel is down.
	StateDisconnected
	// StateConnected indicates any status other than disconnected.
	StateConnected
)

// String returns a human-readable representation of the connection state.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnected:
		return "Connected"
	default:
		return "Unknown"
	}
}

// ParseStatus classifies captured `warp-cli status` output.
// Disconnected if and only if the output contains the disconnected marker;
// anything else counts as connected.
func ParseStatus(output string) ConnectionState {
	if strings.Contains(output, DisconnectedMarker) {
		return StateDisconnected
	}
	return StateConnected
}
