// Package warp wraps the Cloudflare WARP command-line client for WARP Taskbar.
//
// This package implements the glue between the tray menu and warp-cli:
//
//   - Action table: a single consolidated mapping of identifier -> label ->
//     fixed warp-cli argument list, defined once at startup
//   - Client: spawns warp-cli with fixed arguments and captures its output
//   - Status classification: pure functions that turn captured warp-cli
//     output into a connection state
//
// # Architecture
//
// The package is organized around three concerns:
//
//   - Action: an immutable menu action bound to a fixed warp-cli invocation
//   - Client: the process-spawning side effect, kept separate so the
//     classification logic stays unit-testable
//   - ConnectionState: the transient state derived from each status poll
//
// # Error Handling
//
// External command failures are logged and surfaced to the caller; the
// application never exits or retries because warp-cli failed. Output is
// passed through verbatim.
package warp
