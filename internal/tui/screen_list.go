// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/passwordless-vault/internal/service"
	"github.com/MKhiriev/passwordless-vault/models"
)

type listScreen struct {
	items      []models.VaultItem
	idx        int
	searching  bool
	searchBox  textinput.Model
	status     string
	err        error
	showDelete bool
}

func newListScreen() listScreen {
	box := textinput.New()
	box.Placeholder = "search..."
	box.Width = 30
	return listScreen{searchBox: box}
}

func itemIcon(t models.ItemType) string {
	switch t {
	case models.ItemTypePassword:
		return "[P]"
	case models.ItemTypeNote:
		return "[N]"
	case models.ItemTypeSecret:
		return "[S]"
	case models.ItemTypeFile:
		return "[F]"
	default:
		return "[?]"
	}
}

func (l listScreen) current() (models.VaultItem, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		return models.VaultItem{}, false
	}
	return l.items[l.idx], true
}

func updateListScreen(ctx context.Context, svc service.VaultService, l listScreen, msg tea.Msg) (listScreen, tea.Cmd) {
	switch m := msg.(type) {
	case itemsLoadedMsg:
		l.items = m.items
		l.err = m.err
		if l.idx >= len(l.items) {
			l.idx = max(0, len(l.items)-1)
		}
		return l, nil
	case itemSavedMsg:
		l.status = ""
		l.err = m.err
		if m.err == nil {
			l.status = "saved \"" + m.item.Title + "\""
			return l, listItemsCmd(ctx, svc)
		}
		return l, nil
	case itemDeletedMsg:
		l.showDelete = false
		l.err = m.err
		if m.err == nil {
			l.status = "item deleted"
			return l, listItemsCmd(ctx, svc)
		}
		return l, nil
	case lockedMsg:
		return l, func() tea.Msg { return navigateMsg{screen: "auth-locked"} }
	case statusMsg:
		l.status = m.text
		return l, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	if l.showDelete {
		switch {
		case key.Matches(keyMsg, keys.yes):
			item, ok := l.current()
			if !ok {
				l.showDelete = false
				return l, nil
			}
			return l, deleteItemCmd(ctx, svc, item.ID)
		case key.Matches(keyMsg, keys.no) || key.Matches(keyMsg, keys.esc):
			l.showDelete = false
		}
		return l, nil
	}

	if l.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			l.searching = false
			l.searchBox.Blur()
			return l, listItemsCmd(ctx, svc)
		case key.Matches(keyMsg, keys.enter):
			return l, searchItemsCmd(ctx, svc, l.searchBox.Value())
		}
		var cmd tea.Cmd
		l.searchBox, cmd = l.searchBox.Update(msg)
		return l, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if l.idx > 0 {
			l.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if l.idx < len(l.items)-1 {
			l.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		return l, func() tea.Msg { return navigateMsg{screen: "form"} }
	case key.Matches(keyMsg, keys.search):
		l.searching = true
		l.searchBox.Focus()
	case key.Matches(keyMsg, keys.delete):
		if _, ok := l.current(); ok {
			l.showDelete = true
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := l.current(); ok {
			return l, func() tea.Msg { return navigateMsg{screen: "detail"} }
		}
	case key.Matches(keyMsg, keys.passkey):
		return l, func() tea.Msg { return navigateMsg{screen: "passkeys"} }
	case key.Matches(keyMsg, keys.lock):
		return l, lockCmd(ctx, svc)
	}

	return l, nil
}

func viewListScreen(l listScreen) string {
	out := ""
	if l.searching {
		out += "Search: [" + l.searchBox.View() + "]\n\n"
	}

	if len(l.items) == 0 {
		out += "No items yet.\n"
	} else {
		for i, item := range l.items {
			cursor := "  "
			if i == l.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, itemIcon(item.Type), item.Title)
		}
	}

	if l.showDelete {
		item, _ := l.current()
		out += "\n" + errorStyle.Render("Delete \""+item.Title+"\"? y/n") + "\n"
	}
	if l.status != "" {
		out += "\n" + statusStyle.Render(l.status) + "\n"
	}
	if l.err != nil {
		out += "\n" + errorStyle.Render(l.err.Error()) + "\n"
	}

	return renderPage("VAULT", out, "n: new  enter: open  d: delete  /: search  p: passkeys  L: lock")
}
