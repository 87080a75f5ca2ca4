// Package cli provides command-line interface functionality for WARP Taskbar.
// This allows users to control the WARP daemon from the terminal without
// launching the tray application.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/SurajRaika/warp-taskbar/common"
	"github.com/SurajRaika/warp-taskbar/config"
	"github.com/SurajRaika/warp-taskbar/theme"
	"github.com/SurajRaika/warp-taskbar/warp"
)

// CLI represents the command-line interface.
type CLI struct {
	client *warp.Client
	cfg    *config.Config
}

// New creates a new CLI instance.
func New(client *warp.Client, cfg *config.Config) *CLI {
	return &CLI{client: client, cfg: cfg}
}

// Status shows the current connection status along with the effective
// desktop appearance and poll settings.
func (c *CLI) Status(ctx context.Context) error {
	out, err := c.client.Query(ctx, "status")
	if err != nil {
		return fmt.Errorf("could not query status: %w", err)
	}
	state := warp.ParseStatus(out)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tVALUE")
	fmt.Fprintln(w, "-----\t-----")
	fmt.Fprintf(w, "State\t%s\n", state)
	fmt.Fprintf(w, "Desktop\t%s\n", c.appearance())
	fmt.Fprintf(w, "Poll interval\t%s\n", c.cfg.PollInterval())
	w.Flush()

	fmt.Println()
	fmt.Println(strings.TrimRight(out, "\n"))
	return nil
}

// Connect brings the WARP tunnel up.
func (c *CLI) Connect(ctx context.Context) error {
	return c.dispatch(ctx, warp.ActionConnect, "Connected")
}

// Disconnect takes the WARP tunnel down.
func (c *CLI) Disconnect(ctx context.Context) error {
	return c.dispatch(ctx, warp.ActionDisconnect, "Disconnected")
}

// SetMode switches the warp-cli operating mode.
func (c *CLI) SetMode(ctx context.Context, mode string) error {
	m, err := warp.ParseMode(mode)
	if err != nil {
		modes := make([]string, len(warp.Modes))
		for i, known := range warp.Modes {
			modes[i] = string(known)
		}
		return fmt.Errorf("%w (valid modes: %s)", err, strings.Join(modes, ", "))
	}

	return c.dispatch(ctx, warp.ModeActionID(m), fmt.Sprintf("Mode set to %s", m))
}

// dispatch runs a single action and reports the outcome.
func (c *CLI) dispatch(ctx context.Context, actionID, done string) error {
	action, err := warp.Lookup(actionID)
	if err != nil {
		return err
	}

	if _, err := c.client.Query(ctx, action.Args...); err != nil {
		return fmt.Errorf("%s failed: %w", action.Label, err)
	}

	fmt.Printf("✓ %s\n", done)
	return nil
}

// appearance resolves the effective desktop appearance, honoring the
// configured theme override.
func (c *CLI) appearance() theme.Appearance {
	switch c.cfg.Theme {
	case common.ThemeLight:
		return theme.AppearanceLight
	case common.ThemeDark:
		return theme.AppearanceDark
	default:
		return theme.Detect()
	}
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`WARP Taskbar - Cloudflare WARP in your system tray

Usage:
  warp-taskbar [OPTIONS]

Without options the system tray application starts.

Options:
  -version         Show version and exit
  -verbose         Enable verbose logging
  -status          Show current connection status
  -connect         Connect to Cloudflare WARP
  -disconnect      Disconnect from Cloudflare WARP
  -mode MODE       Set operating mode (warp, doh, dot, warp+doh, warp+dot)
  -watch           Watch connection status interactively
  -help            Show this help message

Custom tray entries can be defined in ~/Desktop/commands.json:
  [{"title": "Open Logs", "command": "xdg-open ~/.config/warp-taskbar"}]`)
}
