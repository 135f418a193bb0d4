// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/passwordless-vault/internal/service"
)

// Run launches the interactive vault TUI in alternate-screen mode. It
// blocks until the user quits (q / Ctrl+C).
//
// svc.Initialize is called once up front to decide the starting screen:
// the first-run setup form when no vault exists yet, or the unlock prompt
// when one does.
func Run(ctx context.Context, svc service.VaultService) error {
	state, err := svc.Initialize(ctx)
	if err != nil {
		return err
	}

	startScreen := "auth-locked"
	uninitialised := state == service.Uninitialised
	if uninitialised {
		startScreen = "auth-uninitialised"
	}

	root := newRootModel(ctx, svc, startScreen, uninitialised)
	_, err = tea.NewProgram(root, tea.WithAltScreen()).Run()
	return err
}
