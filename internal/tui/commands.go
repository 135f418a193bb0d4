// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/passwordless-vault/internal/service"
)

// Every command below closes over ctx and svc and returns a tea.Cmd that
// blocks on one VaultService call, translating its result into one of the
// typed messages in messages.go. This keeps every screen's Update method
// free of direct service calls, matching the Elm convention the rest of
// this package follows.

func setupCmd(ctx context.Context, svc service.VaultService, userName, passkeyName string) tea.Cmd {
	return func() tea.Msg {
		err := svc.Setup(ctx, userName, passkeyName)
		return setupDoneMsg{err: err}
	}
}

func unlockCmd(ctx context.Context, svc service.VaultService) tea.Cmd {
	return func() tea.Msg {
		err := svc.Unlock(ctx)
		return unlockDoneMsg{state: svc.State(), err: err}
	}
}

func lockCmd(ctx context.Context, svc service.VaultService) tea.Cmd {
	return func() tea.Msg {
		_ = svc.Lock(ctx)
		return lockedMsg{}
	}
}

func listItemsCmd(ctx context.Context, svc service.VaultService) tea.Cmd {
	return func() tea.Msg {
		items, err := svc.ListItems(ctx)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func searchItemsCmd(ctx context.Context, svc service.VaultService, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := svc.Search(ctx, query)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func addItemCmd(ctx context.Context, svc service.VaultService, form itemForm) tea.Cmd {
	return func() tea.Msg {
		item, err := svc.AddVaultItem(ctx, form.toVaultItem())
		return itemSavedMsg{item: item, err: err}
	}
}

func addFileCmd(ctx context.Context, svc service.VaultService, content []byte, fileName, mimeType, title string) tea.Cmd {
	return func() tea.Msg {
		item, err := svc.AddFileItem(ctx, content, fileName, mimeType, title)
		return itemSavedMsg{item: item, err: err}
	}
}

func deleteItemCmd(ctx context.Context, svc service.VaultService, id string) tea.Cmd {
	return func() tea.Msg {
		err := svc.DeleteVaultItem(ctx, id)
		return itemDeletedMsg{id: id, err: err}
	}
}

func getFileCmd(ctx context.Context, svc service.VaultService, id string) tea.Cmd {
	return func() tea.Msg {
		content, fileName, mimeType, err := svc.GetDecryptedFile(ctx, id)
		return fileLoadedMsg{content: content, fileName: fileName, mimeType: mimeType, err: err}
	}
}

func listCredentialsCmd(ctx context.Context, svc service.VaultService) tea.Cmd {
	return func() tea.Msg {
		creds, err := svc.ListCredentials(ctx)
		return credentialsLoadedMsg{credentials: creds, err: err}
	}
}

func addPasskeyCmd(ctx context.Context, svc service.VaultService, passkeyName string) tea.Cmd {
	return func() tea.Msg {
		err := svc.AddPasskey(ctx, passkeyName)
		return passkeyAddedMsg{err: err}
	}
}

func removePasskeyCmd(ctx context.Context, svc service.VaultService, id string) tea.Cmd {
	return func() tea.Msg {
		err := svc.RemovePasskey(ctx, id)
		return passkeyRemovedMsg{id: id, err: err}
	}
}
