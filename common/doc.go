// Package common provides shared constants, types, utilities, and errors
// used throughout the WARP Taskbar application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like the poll interval, file names, and the warp-cli binary name
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Logger: Leveled logging with optional rotating file output
//   - Utils: Path helpers for the config directory and the desktop commands file
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "github.com/SurajRaika/warp-taskbar/common"
//
//	// Use constants
//	interval := common.PollInterval
//
//	// Use logger
//	common.LogInfo("Dispatching action %s", action.ID)
//
//	// Check errors
//	if errors.Is(err, common.ErrInvalidCommands) {
//	    // Handle malformed commands file
//	}
package common
