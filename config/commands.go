// Package config provides configuration management for WARP Taskbar.
// This file contains the loader for the optional user-supplied command
// list that becomes extra tray menu entries.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/SurajRaika/warp-taskbar/common"
)

// CommandItem is one user-supplied menu entry. The command runs through a
// shell when the entry is selected.
type CommandItem struct {
	// ID is a generated unique identifier for the menu entry.
	ID string `json:"-"`
	// Title is the text shown in the tray menu.
	Title string `json:"title"`
	// Command is the shell command bound to the entry.
	Command string `json:"command"`
}

// LoadCommands reads the custom command list from path.
//
// The file is optional: a missing file yields no entries. A file that
// exists but cannot be read or parsed is a fatal configuration error,
// surfaced to the caller so startup can abort.
func LoadCommands(path string) ([]CommandItem, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrInvalidCommands, path, err)
	}

	var items []CommandItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrInvalidCommands, path, err)
	}

	for i := range items {
		if strings.TrimSpace(items[i].Title) == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty title", common.ErrInvalidCommands, i)
		}
		if strings.TrimSpace(items[i].Command) == "" {
			return nil, fmt.Errorf("%w: entry %q has an empty command", common.ErrInvalidCommands, items[i].Title)
		}
		// Titles may repeat; identifiers must not.
		items[i].ID = "cmd-" + uuid.NewString()
	}

	return items, nil
}

// ResolveCommandsPath resolves the custom commands file location: the
// configured override when set, otherwise the desktop default.
func (c *Config) ResolveCommandsPath() (string, error) {
	if path := strings.TrimSpace(c.CommandsPath); path != "" {
		return path, nil
	}
	return common.DesktopCommandsPath()
}
