// Package warp wraps the Cloudflare WARP command-line client.
// This file contains the Client type which spawns warp-cli processes.
package warp

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/SurajRaika/warp-taskbar/common"
)

// Client spawns warp-cli with fixed argument lists and captures its output.
// The zero value is not usable; create instances with NewClient.
type Client struct {
	binary string
}

// NewClient creates a client for the system warp-cli binary.
func NewClient() *Client {
	return &Client{binary: common.WarpCommand}
}

// Installed reports whether the warp-cli binary is available in PATH.
func (c *Client) Installed() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// Query runs warp-cli with the given arguments and returns the combined
// output without printing it. Used by the status poller.
func (c *Client) Query(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%w: %s %v: %v", common.ErrCommandFailed, c.binary, args, err)
	}
	return string(out), nil
}

// Dispatch executes a menu action: it runs the action's fixed warp-cli
// invocation and prints the captured output verbatim. Failures are logged
// and the application continues (the uniform error policy).
func (c *Client) Dispatch(ctx context.Context, action Action) string {
	common.LogInfo("Executing: %s %v", c.binary, action.Args)

	out, err := c.Query(ctx, action.Args...)
	if err != nil {
		common.LogError("Action %s failed: %v", action.ID, err)
		return out
	}

	fmt.Printf("Output:\n%s", out)
	return out
}

// Status runs `warp-cli status` silently and classifies the result.
func (c *Client) Status(ctx context.Context) (ConnectionState, error) {
	out, err := c.Query(ctx, "status")
	if err != nil {
		return StateUnknown, err
	}
	return ParseStatus(out), nil
}
