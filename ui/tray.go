// Package ui provides the system tray interface for WARP Taskbar.
// This file contains the tray menu and the status/appearance poller.
package ui

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"fyne.io/systray"

	"github.com/SurajRaika/warp-taskbar/common"
	"github.com/SurajRaika/warp-taskbar/config"
	"github.com/SurajRaika/warp-taskbar/notify"
	"github.com/SurajRaika/warp-taskbar/theme"
	"github.com/SurajRaika/warp-taskbar/warp"
)

// Tray manages the system tray icon and menu.
// It gives quick access to every warp-cli action plus the user's custom
// commands, and keeps the icon in sync with the daemon.
type Tray struct {
	ctx      context.Context
	client   *warp.Client
	cfg      *config.Config
	commands []config.CommandItem

	iconCh   chan []byte
	stopCh   chan struct{}
	stopOnce sync.Once

	lastState warp.ConnectionState
}

// NewTray creates a new tray for the given client and configuration.
// commands holds the optional user-supplied menu entries, already
// validated by config.LoadCommands.
func NewTray(ctx context.Context, client *warp.Client, cfg *config.Config, commands []config.CommandItem) *Tray {
	return &Tray{
		ctx:      ctx,
		client:   client,
		cfg:      cfg,
		commands: commands,
		iconCh:   make(chan []byte, 1),
		stopCh:   make(chan struct{}),
	}
}

// Run starts the system tray. It blocks until Quit is called or the
// context is cancelled.
func (t *Tray) Run() {
	go func() {
		<-t.ctx.Done()
		t.Quit()
	}()
	systray.Run(t.onReady, t.onExit)
}

// Quit stops the poller and tears down the tray. Safe to call more
// than once.
func (t *Tray) Quit() {
	if t.stop() {
		systray.Quit()
	}
}

// stop closes stopCh at most once and reports whether this call was the
// one that stopped the tray.
func (t *Tray) stop() bool {
	stopped := false
	t.stopOnce.Do(func() {
		close(t.stopCh)
		stopped = true
	})
	return stopped
}

// onReady is called when the systray is ready.
func (t *Tray) onReady() {
	systray.SetIcon(iconInactive)
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	for _, id := range warp.ConnectivityActions {
		t.addActionItem(id)
	}

	systray.AddSeparator()

	startup := systray.AddMenuItem("On Startup", "Control automatic reconnection")
	for _, id := range warp.StartupActions {
		t.addSubActionItem(startup, id)
	}

	modes := systray.AddMenuItem("Set Mode", "Switch the warp-cli operating mode")
	for _, m := range warp.Modes {
		t.addSubActionItem(modes, warp.ModeActionID(m))
	}

	other := systray.AddMenuItem("Other", "Registration, logging and diagnostics")
	for _, id := range warp.OtherActions {
		if id == "" {
			other.AddSeparator()
			continue
		}
		t.addSubActionItem(other, id)
	}

	if entries := t.commandEntries(); len(entries) > 0 {
		systray.AddSeparator()
		for _, entry := range entries {
			t.addCommandItem(entry)
		}
	}

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Close "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			t.Quit()
		}
	}()

	go t.poll()
	go t.applyIcons()
}

// onExit is called when the systray is about to exit.
func (t *Tray) onExit() {
	common.LogInfo("Tray cleanup completed")
}

// addActionItem adds a top-level menu entry bound to a warp-cli action.
func (t *Tray) addActionItem(id string) {
	action, err := warp.Lookup(id)
	if err != nil {
		common.LogError("Skipping menu entry: %v", err)
		return
	}

	item := systray.AddMenuItem(action.Label, action.Tooltip)
	go func() {
		for range item.ClickedCh {
			t.client.Dispatch(t.ctx, action)
		}
	}()
}

// addSubActionItem adds a submenu entry bound to a warp-cli action.
func (t *Tray) addSubActionItem(parent *systray.MenuItem, id string) {
	action, err := warp.Lookup(id)
	if err != nil {
		common.LogError("Skipping menu entry: %v", err)
		return
	}

	item := parent.AddSubMenuItem(action.Label, action.Tooltip)
	go func() {
		for range item.ClickedCh {
			t.client.Dispatch(t.ctx, action)
		}
	}()
}

// commandEntry is one planned custom menu entry: its display texts plus
// the click handler bound to exactly one source command.
type commandEntry struct {
	label   string
	tooltip string
	onClick func()
}

// commandEntries plans the custom section of the menu, one entry per
// loaded command.
func (t *Tray) commandEntries() []commandEntry {
	entries := make([]commandEntry, 0, len(t.commands))
	for _, cmd := range t.commands {
		entries = append(entries, commandEntry{
			label:   cmd.Title,
			tooltip: cmd.Command,
			onClick: func() { t.runCommand(cmd) },
		})
	}
	return entries
}

// addCommandItem wires one planned custom entry into the tray menu.
func (t *Tray) addCommandItem(entry commandEntry) {
	item := systray.AddMenuItem(entry.label, entry.tooltip)
	go func() {
		for range item.ClickedCh {
			entry.onClick()
		}
	}()
}

// runCommand executes a custom command through the shell. Output goes to
// the log; failures never take the tray down.
func (t *Tray) runCommand(cmd config.CommandItem) {
	common.LogInfo("Running custom command %s: %s", cmd.ID, cmd.Command)

	out, err := exec.CommandContext(t.ctx, "sh", "-c", cmd.Command).CombinedOutput()
	if err != nil {
		common.LogError("Custom command %q failed: %v", cmd.Title, err)
	}
	if len(out) > 0 {
		common.LogDebug("Custom command %q output: %s", cmd.Title, out)
	}
}

// poll re-checks connection status and desktop appearance on every tick
// and publishes the matching icon. It never touches the tray directly;
// applyIcons is the only writer.
func (t *Tray) poll() {
	ticker := time.NewTicker(t.cfg.PollInterval())
	defer ticker.Stop()

	t.pollLoop(ticker.C, t.refresh)
}

// pollLoop runs refresh once up front and then on every tick, until the
// tray is stopped. Once stopCh closes, no further refresh fires.
func (t *Tray) pollLoop(ticks <-chan time.Time, refresh func()) {
	refresh()
	for {
		select {
		case <-ticks:
			refresh()
		case <-t.stopCh:
			return
		}
	}
}

// refresh performs one status/appearance check.
func (t *Tray) refresh() {
	state, err := t.client.Status(t.ctx)
	if err != nil {
		common.LogWarn("Status poll failed: %v", err)
	}

	t.announce(state)
	t.publishIcon(ChooseIcon(state, t.appearance()))
}

// appearance resolves the effective desktop appearance, honoring the
// configured theme override.
func (t *Tray) appearance() theme.Appearance {
	switch t.cfg.Theme {
	case common.ThemeLight:
		return theme.AppearanceLight
	case common.ThemeDark:
		return theme.AppearanceDark
	default:
		return theme.Detect()
	}
}

// announce sends a desktop notification when the connection state flips.
func (t *Tray) announce(state warp.ConnectionState) {
	prev := t.lastState
	t.lastState = state

	if !t.cfg.ShowNotifications || state == prev || prev == warp.StateUnknown {
		return
	}

	switch state {
	case warp.StateConnected:
		notify.Connected()
	case warp.StateDisconnected:
		notify.Disconnected()
	}
}

// publishIcon hands the desired icon to the applier without blocking the
// poller. A stale pending icon is replaced by the newer one.
func (t *Tray) publishIcon(icon []byte) {
	for {
		select {
		case t.iconCh <- icon:
			return
		case <-t.iconCh:
			// Drop the stale pending icon and retry.
		}
	}
}

// applyIcons is the single goroutine allowed to call systray.SetIcon.
func (t *Tray) applyIcons() {
	var current []byte
	for {
		select {
		case icon := <-t.iconCh:
			// Icons are the shared package-level slices, so pointer
			// identity is enough to skip redundant updates.
			if current != nil && &icon[0] == &current[0] {
				continue
			}
			current = icon
			systray.SetIcon(icon)
		case <-t.stopCh:
			return
		}
	}
}
