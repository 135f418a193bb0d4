// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/passwordless-vault/internal/service"
	"github.com/MKhiriev/passwordless-vault/models"
)

type detailScreen struct {
	item       models.VaultItem
	fileLoaded bool
	fileBytes  []byte
	status     string
	err        error
}

func newDetailScreen(item models.VaultItem) detailScreen {
	return detailScreen{item: item}
}

func updateDetailScreen(ctx context.Context, svc service.VaultService, d detailScreen, msg tea.Msg) (detailScreen, tea.Cmd) {
	switch m := msg.(type) {
	case fileLoadedMsg:
		d.err = m.err
		if m.err == nil {
			d.fileLoaded = true
			d.fileBytes = m.content
		}
		return d, nil
	case statusMsg:
		d.status = m.text
		d.err = nil
		return d, nil
	case errMsg:
		d.err = m.err
		return d, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return d, func() tea.Msg { return navigateMsg{screen: "list"} }
	case key.Matches(keyMsg, keys.copy):
		return d, copyFieldCmd(d.item)
	case keyMsg.String() == "s":
		if d.item.Type == models.ItemTypeFile {
			if !d.fileLoaded {
				return d, getFileCmd(ctx, svc, d.item.ID)
			}
			return d, saveFileCmd(d)
		}
	}

	if d.item.Type == models.ItemTypeFile && !d.fileLoaded {
		return d, getFileCmd(ctx, svc, d.item.ID)
	}

	return d, nil
}

func copyFieldCmd(item models.VaultItem) tea.Cmd {
	return func() tea.Msg {
		value := item.Content
		if value == "" {
			return statusMsg{text: "nothing to copy"}
		}
		if err := clipboard.WriteAll(value); err != nil {
			return errMsg{err: err}
		}
		return statusMsg{text: "copied to clipboard"}
	}
}

func saveFileCmd(d detailScreen) tea.Cmd {
	return func() tea.Msg {
		name := "download"
		if d.item.FileName != nil {
			name = *d.item.FileName
		}
		dest := filepath.Join(os.TempDir(), name)
		if err := os.WriteFile(dest, d.fileBytes, 0o600); err != nil {
			return errMsg{err: err}
		}
		return statusMsg{text: "saved to " + dest}
	}
}

func viewDetailScreen(d detailScreen) string {
	out := fmt.Sprintf("%s  [%s]\n\n", d.item.Title, itemKindLabel(d.item.Type))

	switch d.item.Type {
	case models.ItemTypePassword:
		out += "Username: " + valueOrDash(d.item.Username) + "\n"
		out += "Password: " + secretStyle.Render(d.item.Content) + "\n"
		out += "URL:      " + valueOrDash(d.item.URL) + "\n"
	case models.ItemTypeNote, models.ItemTypeSecret:
		out += secretStyle.Render(d.item.Content) + "\n"
	case models.ItemTypeFile:
		out += "File name: " + valueOrDash(d.item.FileName) + "\n"
		if d.item.FileSize != nil {
			out += fmt.Sprintf("Size:      %d bytes\n", *d.item.FileSize)
		}
		out += "MIME type: " + valueOrDash(d.item.MimeType) + "\n"
		if !d.fileLoaded {
			out += "\ndecrypting...\n"
		}
	}

	if d.status != "" {
		out += "\n" + statusStyle.Render(d.status) + "\n"
	}
	if d.err != nil {
		out += "\n" + errorStyle.Render(d.err.Error()) + "\n"
	}

	hotkeys := "c: copy  esc: back"
	if d.item.Type == models.ItemTypeFile {
		hotkeys = "s: save to disk  esc: back"
	}
	return renderPage("ITEM", out, hotkeys)
}
