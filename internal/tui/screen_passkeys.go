// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/passwordless-vault/internal/service"
	"github.com/MKhiriev/passwordless-vault/models"
)

type passkeysScreen struct {
	credentials []models.Credential
	idx         int
	adding      bool
	nameInput   textinput.Model
	status      string
	err         error
}

func newPasskeysScreen() passkeysScreen {
	in := textinput.New()
	in.Placeholder = "passkey name"
	in.Width = 30
	return passkeysScreen{nameInput: in}
}

func updatePasskeysScreen(ctx context.Context, svc service.VaultService, p passkeysScreen, msg tea.Msg) (passkeysScreen, tea.Cmd) {
	switch m := msg.(type) {
	case credentialsLoadedMsg:
		p.credentials = m.credentials
		p.err = m.err
		if p.idx >= len(p.credentials) {
			p.idx = max(0, len(p.credentials)-1)
		}
		return p, nil
	case passkeyAddedMsg:
		p.adding = false
		p.err = m.err
		if m.err == nil {
			p.status = "passkey enrolled"
			return p, listCredentialsCmd(ctx, svc)
		}
		return p, nil
	case passkeyRemovedMsg:
		p.err = m.err
		if m.err == nil {
			p.status = "passkey removed"
			return p, listCredentialsCmd(ctx, svc)
		}
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.adding {
		switch keyMsg.String() {
		case "esc":
			p.adding = false
			return p, nil
		case "enter":
			name := p.nameInput.Value()
			if name == "" {
				name = "Passkey"
			}
			return p, addPasskeyCmd(ctx, svc, name)
		}
		var cmd tea.Cmd
		p.nameInput, cmd = p.nameInput.Update(msg)
		return p, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return p, func() tea.Msg { return navigateMsg{screen: "list"} }
	case "up", "k":
		if p.idx > 0 {
			p.idx--
		}
	case "down", "j":
		if p.idx < len(p.credentials)-1 {
			p.idx++
		}
	case "n":
		p.adding = true
		p.nameInput.SetValue("")
		p.nameInput.Focus()
	case "d":
		if p.idx >= 0 && p.idx < len(p.credentials) {
			return p, removePasskeyCmd(ctx, svc, p.credentials[p.idx].ID)
		}
	}

	return p, nil
}

func viewPasskeysScreen(p passkeysScreen) string {
	if p.adding {
		data := "Name: [" + p.nameInput.View() + "]\n"
		return renderPage("ADD PASSKEY", data, "enter: enroll  esc: cancel")
	}

	out := ""
	if len(p.credentials) == 0 {
		out += "No passkeys enrolled.\n"
	}
	for i, cred := range p.credentials {
		cursor := "  "
		if i == p.idx {
			cursor = "> "
		}
		out += cursor + cred.Name + "  (" + cred.ID[:min(12, len(cred.ID))] + "...)\n"
	}

	if p.status != "" {
		out += "\n" + statusStyle.Render(p.status) + "\n"
	}
	if p.err != nil {
		out += "\n" + errorStyle.Render(p.err.Error()) + "\n"
	}

	return renderPage("PASSKEYS", out, "n: add  d: remove  esc: back")
}
