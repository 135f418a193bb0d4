// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/passwordless-vault/internal/service"
)

// rootModel is the top-level Bubble Tea router. It owns the one
// VaultService instance for the program's lifetime and dispatches every
// message to whichever screen is currently active, intercepting
// [navigateMsg] to switch screens.
type rootModel struct {
	ctx context.Context
	svc service.VaultService

	screen string

	auth     authScreen
	list     listScreen
	form     itemForm
	detail   detailScreen
	passkeys passkeysScreen

	quit bool
}

func newRootModel(ctx context.Context, svc service.VaultService, startScreen string, uninitialised bool) rootModel {
	return rootModel{
		ctx:    ctx,
		svc:    svc,
		screen: startScreen,
		auth:   newAuthScreen(uninitialised),
		list:   newListScreen(),
	}
}

func (r rootModel) Init() tea.Cmd {
	if r.screen == "auth-uninitialised" || r.screen == "auth-locked" {
		return r.auth.Init()
	}
	return listItemsCmd(r.ctx, r.svc)
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.quit) {
		inListNormalMode := r.screen == "list" && !r.list.searching && !r.list.showDelete
		if keyMsg.String() == "ctrl+c" || inListNormalMode {
			r.quit = true
			return r, tea.Quit
		}
	}

	if nav, ok := msg.(navigateMsg); ok {
		return r.navigate(nav)
	}

	switch r.screen {
	case "auth-uninitialised", "auth-locked":
		updated, cmd := updateAuthScreen(r.ctx, r.svc, r.auth, msg)
		r.auth = updated
		return r, cmd
	case "list":
		updated, cmd := updateListScreen(r.ctx, r.svc, r.list, msg)
		r.list = updated
		return r, cmd
	case "form":
		updated, cmd, handled := updateItemForm(r.ctx, r.svc, r.form, msg)
		r.form = updated
		if handled {
			return r, cmd
		}
	case "detail":
		updated, cmd := updateDetailScreen(r.ctx, r.svc, r.detail, msg)
		r.detail = updated
		return r, cmd
	case "passkeys":
		updated, cmd := updatePasskeysScreen(r.ctx, r.svc, r.passkeys, msg)
		r.passkeys = updated
		return r, cmd
	}

	return r, nil
}

func (r rootModel) navigate(nav navigateMsg) (tea.Model, tea.Cmd) {
	r.screen = nav.screen
	switch nav.screen {
	case "list":
		return r, listItemsCmd(r.ctx, r.svc)
	case "form":
		r.form = newItemForm()
		return r, nil
	case "detail":
		item, ok := r.list.current()
		if !ok {
			r.screen = "list"
			return r, listItemsCmd(r.ctx, r.svc)
		}
		r.detail = newDetailScreen(item)
		return r, nil
	case "passkeys":
		r.passkeys = newPasskeysScreen()
		return r, listCredentialsCmd(r.ctx, r.svc)
	case "auth-locked":
		r.auth = newAuthScreen(false)
		return r, r.auth.Init()
	}
	return r, nil
}

func (r rootModel) View() string {
	switch r.screen {
	case "auth-uninitialised", "auth-locked":
		return appStyle.Render(viewAuthScreen(r.auth))
	case "list":
		return appStyle.Render(viewListScreen(r.list))
	case "form":
		return appStyle.Render(viewItemForm(r.form))
	case "detail":
		return appStyle.Render(viewDetailScreen(r.detail))
	case "passkeys":
		return appStyle.Render(viewPasskeysScreen(r.passkeys))
	default:
		return appStyle.Render("...")
	}
}
