// Package common provides shared constants, types, and utilities
// used across the WARP Taskbar application.
package common

import "errors"

// Sentinel errors for tray and CLI operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// External command errors.
	ErrCommandFailed = errors.New("external command failed")
	ErrWarpNotFound  = errors.New("warp-cli not found in PATH")

	// Configuration errors.
	ErrConfigLoad      = errors.New("failed to load configuration")
	ErrConfigSave      = errors.New("failed to save configuration")
	ErrInvalidCommands = errors.New("invalid custom commands file")

	// Action errors.
	ErrUnknownAction = errors.New("unknown action identifier")
	ErrUnknownMode   = errors.New("unknown warp mode")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
