// leptinchef TUI - A terminal cooking assistant: recipes, kitchen
// inventory, and a chat with the chef.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leptinchef/leptinchef-tui/internal/backend"
	"github.com/leptinchef/leptinchef-tui/internal/cache"
	"github.com/leptinchef/leptinchef-tui/internal/config"
	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/store"
	"github.com/leptinchef/leptinchef-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("leptinchef %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "--help", "-h":
			printUsage()
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "leptinchef: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	dir, err := store.NewDir(filepath.Join(cfg.DataDir, "state"))
	if err != nil {
		return fmt.Errorf("could not open state directory: %w", err)
	}

	ids := &model.UUIDGenerator{}
	chatStore := store.NewChatStore(dir, ids)
	uiStore := store.NewUIStore(dir, ids)
	userStore := store.NewUserStore(dir)

	// Config file wins over the persisted preference on startup.
	if theme := model.Theme(cfg.UI.Theme); theme.Valid() && theme != uiStore.Theme() {
		uiStore.SetTheme(theme)
	}
	if cfg.UI.SidebarCollapsed {
		uiStore.SetSidebarCollapsed(true)
	}

	mock, err := backend.NewMock(backend.Options{
		DatabasePath: cfg.Backend.DatabasePath,
		LatencyScale: cfg.Backend.LatencyScale,
		IDs:          ids,
		Seed:         true,
	})
	if err != nil {
		return fmt.Errorf("could not open backend: %w", err)
	}
	defer mock.Close()

	client := cache.NewClient(cache.Options{
		Services:     mock.Services(),
		Chat:         chatStore,
		UI:           uiStore,
		ReadRetries:  cfg.Cache.ReadRetries,
		WriteRetries: cfg.Cache.WriteRetries,
	})

	app := ui.New(ui.Options{
		Client:       client,
		Chat:         chatStore,
		UI:           uiStore,
		User:         userStore,
		ExpiringDays: cfg.Poll.ExpiringDays,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())

	// Timer-driven notification removal repaints through the program loop.
	uiStore.SetAutoDismissFunc(func() {
		program.Send(ui.RepaintMsg{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Poll.Messages || cfg.Poll.Expiring {
		poller := cache.NewPoller(client, cache.PollerOptions{
			Messages:     cfg.Poll.Messages,
			Expiring:     cfg.Poll.Expiring,
			ExpiringDays: cfg.Poll.ExpiringDays,
			OnUpdate: func() {
				program.Send(ui.RepaintMsg{})
			},
		})
		go poller.Run(ctx)
	}

	// Editing the config file while running hot-reloads the theme.
	if tomlPath, pathErr := config.ConfigPathTOML(); pathErr == nil {
		if watcher, watchErr := config.NewWatcher(tomlPath, func(c *config.Config) {
			program.Send(ui.ThemeChangedMsg{Theme: model.Theme(c.UI.Theme)})
		}); watchErr == nil {
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		return err
	}

	// Best-effort flush; snapshots were also written on every mutation.
	chatStore.Flush()
	uiStore.Flush()
	userStore.Flush()
	return nil
}

func printUsage() {
	fmt.Println(`leptinchef - terminal cooking assistant

Usage:
  leptinchef            start the TUI
  leptinchef --version  print version and exit

Configuration:
  ~/.leptinchef/config.toml (or config.json)
  LEPTINCHEF_DATA_DIR, LEPTINCHEF_THEME, LEPTINCHEF_LATENCY_SCALE,
  LEPTINCHEF_DB_PATH, LEPTINCHEF_POLLING override the file.

Keys:
  tab / 1-5   switch pages
  ctrl+b      toggle sidebar
  q, ctrl+c   quit`)
}
