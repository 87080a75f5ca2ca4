// Package main provides the entry point for WARP Taskbar.
// WARP Taskbar is a Linux system tray companion for the Cloudflare WARP
// client that keeps the full warp-cli action set one click away.
//
// Features:
//   - Tray menu covering connect/disconnect, modes, startup and diagnostics
//   - Status polling with theme-aware icon switching
//   - Custom tray entries from a user-supplied commands file
//   - Command-line interface for scripting and automation
//
// Usage:
//
//	warp-taskbar [options]
//
// Environment:
//
//	The application requires warp-cli (the Cloudflare WARP client) to be
//	installed on the system.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SurajRaika/warp-taskbar/cli"
	"github.com/SurajRaika/warp-taskbar/common"
	"github.com/SurajRaika/warp-taskbar/config"
	"github.com/SurajRaika/warp-taskbar/ui"
	"github.com/SurajRaika/warp-taskbar/warp"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// Tray/General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// CLI flags
	showStatus   = flag.Bool("status", false, "Show current connection status")
	doConnect    = flag.Bool("connect", false, "Connect to Cloudflare WARP")
	doDisconnect = flag.Bool("disconnect", false, "Disconnect from Cloudflare WARP")
	setMode      = flag.String("mode", "", "Set operating mode (warp, doh, dot, warp+doh, warp+dot)")
	watchStatus  = flag.Bool("watch", false, "Watch connection status interactively")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	// Initialize logger with structured logging and file output
	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	// Setup graceful shutdown context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	client := warp.NewClient()
	if !client.Installed() {
		common.LogError("%v", common.ErrWarpNotFound)
		fmt.Fprintf(os.Stderr, "Error: %v. Install the Cloudflare WARP client first.\n", common.ErrWarpNotFound)
		os.Exit(1)
	}

	// A missing config file is created with defaults; a broken one is a
	// startup error.
	cfg, err := config.Load()
	if err != nil {
		common.LogError("Could not load configuration: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Check if any CLI mode flag is set
	if *showStatus || *doConnect || *doDisconnect || *setMode != "" || *watchStatus {
		runCLI(ctx, client, cfg)
		return
	}

	// A present-but-broken commands file is a startup error; a missing
	// file just means no custom entries.
	commandsPath, err := cfg.ResolveCommandsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	commands, err := config.LoadCommands(commandsPath)
	if err != nil {
		common.LogError("Invalid commands file: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(commands) > 0 {
		common.LogInfo("Loaded %d custom commands from %s", len(commands), commandsPath)
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	tray := ui.NewTray(ctx, client, cfg, commands)
	tray.Run()
}

// runCLI handles command-line interface operations.
// It accepts a context for graceful shutdown support.
func runCLI(ctx context.Context, client *warp.Client, cfg *config.Config) {
	cliApp := cli.New(client, cfg)

	// Check if context is already cancelled before proceeding
	select {
	case <-ctx.Done():
		common.LogInfo("Operation cancelled before execution")
		return
	default:
	}

	var cliErr error

	switch {
	case *showStatus:
		cliErr = cliApp.Status(ctx)
	case *doConnect:
		cliErr = cliApp.Connect(ctx)
	case *doDisconnect:
		cliErr = cliApp.Disconnect(ctx)
	case *setMode != "":
		cliErr = cliApp.SetMode(ctx, *setMode)
	case *watchStatus:
		cliErr = cliApp.Watch(ctx)
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		os.Exit(1)
	}
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()
}
