// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/passwordless-vault/internal/service"
)

// authScreen drives both first-run Setup and returning-user Unlock: which
// one is shown is decided when the screen is built ([Run] passes it from
// Initialize's result; [rootModel] rebuilds it for unlock after a lock),
// not by this screen.
type authScreen struct {
	uninitialised bool
	userInput     textinput.Model
	passkeyInput  textinput.Model
	focus         int
	working       bool
	spinner       spinner.Model
	err           error
}

func newAuthScreen(uninitialised bool) authScreen {
	user := textinput.New()
	user.Placeholder = "your name"
	user.Width = 30
	user.Focus()

	passkey := textinput.New()
	passkey.Placeholder = "passkey name (e.g. \"MacBook Touch ID\")"
	passkey.Width = 40
	passkey.SetValue("Primary passkey")

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return authScreen{
		uninitialised: uninitialised,
		userInput:     user,
		passkeyInput:  passkey,
		spinner:       s,
	}
}

func (a authScreen) Init() tea.Cmd {
	if a.uninitialised {
		return nil
	}
	return a.spinner.Tick
}

func updateAuthScreen(ctx context.Context, svc service.VaultService, a authScreen, msg tea.Msg) (authScreen, tea.Cmd) {
	switch m := msg.(type) {
	case setupDoneMsg:
		a.working = false
		a.err = m.err
		if m.err == nil {
			return a, func() tea.Msg { return navigateMsg{screen: "list"} }
		}
		return a, nil
	case unlockDoneMsg:
		a.working = false
		a.err = m.err
		if m.err == nil {
			return a, func() tea.Msg { return navigateMsg{screen: "list"} }
		}
		return a, nil
	case spinner.TickMsg:
		if a.working {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(m)
			return a, cmd
		}
		return a, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || a.working {
		return a, nil
	}

	if !a.uninitialised {
		switch keyMsg.String() {
		case "enter":
			a.working = true
			a.err = nil
			return a, tea.Batch(a.spinner.Tick, unlockCmd(ctx, svc))
		}
		return a, nil
	}

	switch keyMsg.String() {
	case "tab":
		a.focus = (a.focus + 1) % 2
		if a.focus == 0 {
			a.userInput.Focus()
			a.passkeyInput.Blur()
		} else {
			a.userInput.Blur()
			a.passkeyInput.Focus()
		}
		return a, nil
	case "enter":
		if a.userInput.Value() == "" {
			return a, nil
		}
		a.working = true
		a.err = nil
		return a, tea.Batch(a.spinner.Tick, setupCmd(ctx, svc, a.userInput.Value(), a.passkeyInput.Value()))
	}

	var cmd tea.Cmd
	if a.focus == 0 {
		a.userInput, cmd = a.userInput.Update(msg)
	} else {
		a.passkeyInput, cmd = a.passkeyInput.Update(msg)
	}
	return a, cmd
}

func viewAuthScreen(a authScreen) string {
	if !a.uninitialised {
		data := "An existing vault was found.\n\n"
		if a.working {
			data += a.spinner.View() + " waiting for your passkey...\n"
		} else {
			data += "Press enter to unlock with your passkey.\n"
		}
		if a.err != nil {
			data += "\n" + errorStyle.Render(a.err.Error()) + "\n"
		}
		return renderPage("UNLOCK VAULT", data, "enter: unlock")
	}

	data := "No vault exists yet. Create one and enroll your first passkey.\n\n"
	data += "Name:    [" + a.userInput.View() + "]\n"
	data += "Passkey: [" + a.passkeyInput.View() + "]\n"
	if a.working {
		data += "\n" + a.spinner.View() + " creating vault...\n"
	}
	if a.err != nil {
		data += "\n" + errorStyle.Render(a.err.Error()) + "\n"
	}
	return renderPage("SET UP VAULT", data, "tab: next field  enter: create")
}
