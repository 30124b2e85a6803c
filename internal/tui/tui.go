// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the synchronization client.
//
// The UI never performs network or disk I/O on its own goroutine: every such
// operation is a [tea.Cmd]. A 100ms tick drains the event channel, the
// pending shares and the queued notifications from the shared sync state.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/models"
)

// Session is the application runtime as seen from the UI.
type Session interface {
	// Settings returns the settings synchronization runs with.
	Settings() models.SynchronizationSettings
	// Restart reloads the persisted settings and restarts synchronization.
	Restart(ctx context.Context) error
	// ForgetDevice removes the device credential and deactivates
	// synchronization.
	ForgetDevice(ctx context.Context) error
}

type TUI struct {
	services  *service.ClientServices
	session   Session
	inboxDir  string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, session Session, inboxDir string, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		session:   session,
		inboxDir:  inboxDir,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.services, t.session, t.inboxDir, t.buildInfo, t.logger)

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
