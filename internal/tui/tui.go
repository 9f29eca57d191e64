// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the feed client.
//
// It draws the synchronized collection as a scrollable list and turns keys
// into navigation requests. Requests run as bubbletea commands so the
// controller's blocking fetch never stalls the event loop, and the
// controller's outcomes come back through [ProgramRenderer] as messages.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/models"
)

type TUI struct {
	navigator service.Navigator
	renderer  *ProgramRenderer
	app       config.ClientApp
	buildInfo models.AppBuildInfo
	sessionID string
	logger    *logger.Logger
}

// New builds the UI around navigator. renderer must be the one the navigator
// reports to.
func New(
	navigator service.Navigator,
	renderer *ProgramRenderer,
	app config.ClientApp,
	buildInfo models.AppBuildInfo,
	sessionID string,
	log *logger.Logger,
) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		navigator: navigator,
		renderer:  renderer,
		app:       app,
		buildInfo: buildInfo,
		sessionID: sessionID,
		logger:    log,
	}
}

// Run takes over the terminal until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newFeedModel(ctx, t.navigator, t.app, t.buildInfo, t.sessionID)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.renderer.attach(program)
	defer t.renderer.detach()

	t.logger.Info().Str("func", "TUI.Run").Msg("terminal program started")
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Str("func", "TUI.Run").Msg("terminal program interrupted")
			return nil
		}
		return fmt.Errorf("run terminal program: %w", err)
	}
	t.logger.Info().Str("func", "TUI.Run").Msg("terminal program finished")

	return nil
}
