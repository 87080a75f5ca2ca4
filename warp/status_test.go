package warp

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   ConnectionState
	}{
		{"disconnected", "Status update: Disconnected\nReason: Manual Disconnection\n", StateDisconnected},
		{"connected", "Status update: Connected\n", StateConnected},
		{"connecting counts as active", "Status update: Connecting\n", StateConnected},
		{"empty output counts as active", "", StateConnected},
		{"marker embedded mid-output", "log line\nStatus update: Disconnected\ntrailer", StateDisconnected},
		{"case sensitive marker", "status update: disconnected", StateConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStatus(tt.output); got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.output, got, tt.want)
			}
		})
	}
}

func TestConnectionState_String(t *testing.T) {
	tests := []struct {
		state    ConnectionState
		expected string
	}{
		{StateDisconnected, "Disconnected"},
		{StateConnected, "Connected"},
		{StateUnknown, "Unknown"},
		{ConnectionState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("ConnectionState.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}
