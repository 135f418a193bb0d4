// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/passwordless-vault/internal/service"
	"github.com/MKhiriev/passwordless-vault/models"
)

// formField indexes the textinput.Model slice in itemForm.
const (
	fieldTitle = iota
	fieldContent
	fieldUsername
	fieldURL
	fieldPath
	fieldCount
)

var itemKinds = []models.ItemType{
	models.ItemTypePassword,
	models.ItemTypeNote,
	models.ItemTypeSecret,
	models.ItemTypeFile,
}

// itemForm is the add-item screen. Exactly one of the content fields or
// the file path field is meaningful, selected by kindIdx.
type itemForm struct {
	inputs  []textinput.Model
	focus   int
	kindIdx int
	status  string
}

func newItemForm() itemForm {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldTitle].Placeholder = "title"
	inputs[fieldContent].Placeholder = "password / note / secret"
	inputs[fieldContent].EchoMode = textinput.EchoPassword
	inputs[fieldUsername].Placeholder = "username (optional)"
	inputs[fieldURL].Placeholder = "url (optional)"
	inputs[fieldPath].Placeholder = "/path/to/file"
	inputs[fieldTitle].Focus()
	return itemForm{inputs: inputs}
}

func (f itemForm) kind() models.ItemType {
	return itemKinds[f.kindIdx]
}

// visibleFields reports which inputs are relevant for the current kind.
func (f itemForm) visibleFields() []int {
	if f.kind() == models.ItemTypeFile {
		return []int{fieldTitle, fieldPath}
	}
	if f.kind() == models.ItemTypePassword {
		return []int{fieldTitle, fieldContent, fieldUsername, fieldURL}
	}
	return []int{fieldTitle, fieldContent}
}

func (f itemForm) toVaultItem() models.VaultItem {
	item := models.VaultItem{
		Type:    f.kind(),
		Title:   f.inputs[fieldTitle].Value(),
		Content: f.inputs[fieldContent].Value(),
	}
	if u := f.inputs[fieldUsername].Value(); u != "" {
		item.Username = &u
	}
	if u := f.inputs[fieldURL].Value(); u != "" {
		item.URL = &u
	}
	return item
}

func (f *itemForm) cycleKind(delta int) {
	n := len(itemKinds)
	f.kindIdx = ((f.kindIdx+delta)%n + n) % n
	f.focus = 0
	visible := f.visibleFields()
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if len(visible) > 0 {
		f.inputs[visible[0]].Focus()
	}
}

func (f *itemForm) advanceFocus(delta int) {
	visible := f.visibleFields()
	if len(visible) == 0 {
		return
	}
	for _, idx := range visible {
		f.inputs[idx].Blur()
	}
	f.focus = ((f.focus+delta)%len(visible) + len(visible)) % len(visible)
	f.inputs[visible[f.focus]].Focus()
}

func updateItemForm(ctx context.Context, svc service.VaultService, f itemForm, msg tea.Msg) (itemForm, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil, false
	}

	switch keyMsg.String() {
	case "esc":
		return f, func() tea.Msg { return navigateMsg{screen: "list"} }, true
	case "tab":
		f.advanceFocus(1)
		return f, nil, true
	case "shift+tab":
		f.advanceFocus(-1)
		return f, nil, true
	case "left":
		f.cycleKind(-1)
		return f, nil, true
	case "right":
		f.cycleKind(1)
		return f, nil, true
	case "enter":
		if f.kind() == models.ItemTypeFile {
			path := f.inputs[fieldPath].Value()
			title := f.inputs[fieldTitle].Value()
			return f, readAndAddFileCmd(ctx, svc, path, title), true
		}
		return f, addItemCmd(ctx, svc, f), true
	}

	visible := f.visibleFields()
	if f.focus >= len(visible) {
		return f, nil, true
	}
	idx := visible[f.focus]
	updated, cmd := f.inputs[idx].Update(msg)
	f.inputs[idx] = updated
	return f, cmd, true
}

func readAndAddFileCmd(ctx context.Context, svc service.VaultService, path, title string) tea.Cmd {
	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return itemSavedMsg{err: err}
		}
		if title == "" {
			title = filepath.Base(path)
		}
		item, err := svc.AddFileItem(ctx, content, filepath.Base(path), mimeTypeFromExt(path), title)
		return itemSavedMsg{item: item, err: err}
	}
}

func mimeTypeFromExt(path string) string {
	switch filepath.Ext(path) {
	case ".txt", ".md":
		return "text/plain"
	case ".json":
		return "application/json"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".pdf":
		return "application/pdf"
	default:
		return models.DefaultMimeType
	}
}

func itemKindLabel(t models.ItemType) string {
	switch t {
	case models.ItemTypePassword:
		return "Password"
	case models.ItemTypeNote:
		return "Note"
	case models.ItemTypeSecret:
		return "Secret"
	case models.ItemTypeFile:
		return "File"
	default:
		return string(t)
	}
}

func viewItemForm(f itemForm) string {
	out := "Type: < " + itemKindLabel(f.kind()) + " >\n\n"

	for _, idx := range f.visibleFields() {
		label := fieldLabel(idx)
		out += label + " [" + f.inputs[idx].View() + "]\n"
	}

	return renderPage("ADD ITEM", out, "left/right: type  tab: next field  enter: save  esc: cancel")
}

func fieldLabel(idx int) string {
	switch idx {
	case fieldTitle:
		return "Title:    "
	case fieldContent:
		return "Content:  "
	case fieldUsername:
		return "Username: "
	case fieldURL:
		return "URL:      "
	case fieldPath:
		return "Path:     "
	default:
		return ""
	}
}
