package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SurajRaika/warp-taskbar/common"
)

func writeCommandsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commands.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCommands_MissingFileIsOptional(t *testing.T) {
	items, err := LoadCommands(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadCommands() error = %v, want nil for missing file", err)
	}
	if items != nil {
		t.Errorf("LoadCommands() = %v, want nil", items)
	}
}

func TestLoadCommands_EntryPerItem(t *testing.T) {
	path := writeCommandsFile(t, `[
		{"title": "Open Logs", "command": "xdg-open ~/.config/warp-taskbar/logs"},
		{"title": "Restart Daemon", "command": "systemctl --user restart warp-svc"},
		{"title": "Open Logs", "command": "journalctl -u warp-svc"}
	]`)

	items, err := LoadCommands(path)
	if err != nil {
		t.Fatalf("LoadCommands() error = %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("LoadCommands() returned %d items, want 3", len(items))
	}

	seen := make(map[string]bool)
	for _, item := range items {
		if item.ID == "" {
			t.Errorf("entry %q has no identifier", item.Title)
		}
		if seen[item.ID] {
			t.Errorf("duplicate identifier %q", item.ID)
		}
		seen[item.ID] = true
	}

	if items[0].Command != "xdg-open ~/.config/warp-taskbar/logs" {
		t.Errorf("first command = %q, unexpected", items[0].Command)
	}
}

func TestLoadCommands_MalformedJSON(t *testing.T) {
	path := writeCommandsFile(t, `{"title": "not a list"`)

	_, err := LoadCommands(path)
	if !errors.Is(err, common.ErrInvalidCommands) {
		t.Errorf("LoadCommands() error = %v, want ErrInvalidCommands", err)
	}
}

func TestLoadCommands_EmptyFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty title", `[{"title": "  ", "command": "true"}]`},
		{"empty command", `[{"title": "Noop", "command": ""}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCommandsFile(t, tt.content)
			_, err := LoadCommands(path)
			if !errors.Is(err, common.ErrInvalidCommands) {
				t.Errorf("LoadCommands() error = %v, want ErrInvalidCommands", err)
			}
		})
	}
}

func TestLoadCommands_UnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	path := writeCommandsFile(t, `[]`)
	if err := os.Chmod(path, 0000); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCommands(path)
	if !errors.Is(err, common.ErrInvalidCommands) {
		t.Errorf("LoadCommands() error = %v, want ErrInvalidCommands", err)
	}
}
