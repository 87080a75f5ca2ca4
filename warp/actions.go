// Package warp wraps the Cloudflare WARP command-line client.
// This file contains the consolidated action table shared by the tray
// menu and the CLI mode.
package warp

import (
	"fmt"

	"github.com/SurajRaika/warp-taskbar/common"
)

// Mode is a warp-cli operating mode accepted by `warp-cli set-mode`.
type Mode string

const (
	ModeWarp    Mode = "warp"
	ModeDoH     Mode = "doh"
	ModeDoT     Mode = "dot"
	ModeWarpDoH Mode = "warp+doh"
	ModeWarpDoT Mode = "warp+dot"
)

// Modes lists all supported operating modes in menu order.
var Modes = []Mode{ModeWarp, ModeDoH, ModeDoT, ModeWarpDoH, ModeWarpDoT}

// ParseMode validates a mode string from user input (CLI -mode flag).
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownMode, s)
}

// Action is an immutable menu action bound to a fixed warp-cli invocation.
// Actions are defined once at startup and never modified by user input.
type Action struct {
	// ID uniquely identifies the action across the menu tree.
	ID string
	// Label is the text shown in the tray menu.
	Label string
	// Tooltip is the hover description for the menu entry.
	Tooltip string
	// Args is the fixed warp-cli argument list.
	Args []string
}

// Action identifiers. The tray menu and the CLI both dispatch through these.
const (
	ActionConnect        = "connect"
	ActionDisconnect     = "disconnect"
	ActionStatus         = "status"
	ActionEnableAlwaysOn = "enable_always_on"
	ActionDisableAlwaysOn = "disable_always_on"
	ActionTeamsUnenroll  = "teams_unenroll"
	ActionRegister       = "register"
	ActionEnableLogging  = "enable_logging"
	ActionDisableLogging = "disable_logging"
	ActionTraceSupport   = "trace_support"
	ActionGenerateReport = "generate_report"
)

// ModeActionID returns the action identifier for switching to a mode.
func ModeActionID(m Mode) string {
	switch m {
	case ModeWarp:
		return "mode_warp"
	case ModeDoH:
		return "mode_doh"
	case ModeDoT:
		return "mode_dot"
	case ModeWarpDoH:
		return "mode_warp_doh"
	case ModeWarpDoT:
		return "mode_warp_dot"
	default:
		return ""
	}
}

// ConnectivityActions are the top-level menu actions.
var ConnectivityActions = []string{ActionConnect, ActionDisconnect, ActionStatus}

// StartupActions populate the "On Startup" submenu.
var StartupActions = []string{ActionEnableAlwaysOn, ActionDisableAlwaysOn}

// OtherActions populate the "Other" submenu. Empty strings mark separators.
var OtherActions = []string{
	ActionTeamsUnenroll,
	ActionRegister,
	"",
	ActionEnableLogging,
	ActionDisableLogging,
	"",
	ActionTraceSupport,
	ActionGenerateReport,
}

// actionTable is the single source of truth for identifier -> label ->
// argument list. Built once, read-only afterwards.
var actionTable = buildActionTable()

func buildActionTable() map[string]Action {
	actions := []Action{
		{ID: ActionConnect, Label: "Connect", Tooltip: "Connect to Cloudflare WARP", Args: []string{"connect"}},
		{ID: ActionDisconnect, Label: "Disconnect", Tooltip: "Disconnect from Cloudflare WARP", Args: []string{"disconnect"}},
		{ID: ActionStatus, Label: "Status", Tooltip: "Print the current connection status", Args: []string{"status"}},
		{ID: ActionEnableAlwaysOn, Label: "Enable Always-On", Tooltip: "Reconnect automatically at startup", Args: []string{"enable-always-on"}},
		{ID: ActionDisableAlwaysOn, Label: "Disable Always-On", Tooltip: "Do not reconnect automatically", Args: []string{"disable-always-on"}},
		{ID: ActionTeamsUnenroll, Label: "Unenroll from Cloudflare for Teams", Tooltip: "Leave the Teams organization", Args: []string{"teams-unenroll"}},
		{ID: ActionRegister, Label: "Register Device with Cloudflare", Tooltip: "Register this device", Args: []string{"register"}},
		{ID: ActionEnableLogging, Label: "Enable Debug Logging", Tooltip: "Turn on warp-cli debug logging", Args: []string{"enable-logging"}},
		{ID: ActionDisableLogging, Label: "Disable Debug Logging", Tooltip: "Turn off warp-cli debug logging", Args: []string{"disable-logging"}},
		{ID: ActionTraceSupport, Label: "Generate Trace Report", Tooltip: "Collect a support trace", Args: []string{"trace-support"}},
		{ID: ActionGenerateReport, Label: "Generate Diagnostic Report", Tooltip: "Collect a diagnostic report", Args: []string{"generate-report"}},
	}

	modeLabels := map[Mode]string{
		ModeWarp:    "WARP",
		ModeDoH:     "DoH (DNS over HTTPS)",
		ModeDoT:     "DoT (DNS over TLS)",
		ModeWarpDoH: "WARP+DoH",
		ModeWarpDoT: "WARP+DoT",
	}
	for _, m := range Modes {
		actions = append(actions, Action{
			ID:      ModeActionID(m),
			Label:   modeLabels[m],
			Tooltip: fmt.Sprintf("Switch to %s mode", modeLabels[m]),
			Args:    []string{"set-mode", string(m)},
		})
	}

	table := make(map[string]Action, len(actions))
	for _, a := range actions {
		table[a.ID] = a
	}
	return table
}

// Lookup returns the action registered under the given identifier.
func Lookup(id string) (Action, error) {
	action, ok := actionTable[id]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", common.ErrUnknownAction, id)
	}
	return action, nil
}

// All returns every registered action. The returned slice is a copy.
func All() []Action {
	actions := make([]Action, 0, len(actionTable))
	for _, a := range actionTable {
		actions = append(actions, a)
	}
	return actions
}
