// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/passwordless-vault/internal/service"
	"github.com/MKhiriev/passwordless-vault/models"
)

// navigateMsg instructs [rootModel] to switch the active screen.
type navigateMsg struct {
	screen string
}

// errMsg carries a background command's failure back to the active
// screen; screens render it rather than crash the program.
type errMsg struct {
	err error
}

// setupDoneMsg reports the outcome of an async Setup call.
type setupDoneMsg struct {
	err error
}

// unlockDoneMsg reports the outcome of an async Unlock call.
type unlockDoneMsg struct {
	state service.State
	err   error
}

// itemsLoadedMsg carries the result of listing/searching vault items.
type itemsLoadedMsg struct {
	items []models.VaultItem
	err   error
}

// itemSavedMsg reports the outcome of adding or updating a vault item.
type itemSavedMsg struct {
	item models.VaultItem
	err  error
}

// itemDeletedMsg reports the outcome of deleting a vault item.
type itemDeletedMsg struct {
	id  string
	err error
}

// fileLoadedMsg carries a decrypted file's content for the detail screen.
type fileLoadedMsg struct {
	content  []byte
	fileName string
	mimeType string
	err      error
}

// credentialsLoadedMsg carries the current list of enrolled passkeys.
type credentialsLoadedMsg struct {
	credentials []models.Credential
	err         error
}

// passkeyAddedMsg reports the outcome of enrolling a new passkey.
type passkeyAddedMsg struct {
	err error
}

// passkeyRemovedMsg reports the outcome of removing a passkey.
type passkeyRemovedMsg struct {
	id  string
	err error
}

// lockedMsg reports that the vault was locked.
type lockedMsg struct{}

// statusMsg sets a transient status line (e.g. "password copied").
type statusMsg struct {
	text string
}
