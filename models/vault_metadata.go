// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultMetadata is stored in the clear (it carries no secret content) under
// the "vault-metadata" key. It lets the caller detect vault existence and
// drive UI (item counts, timestamps) without unlocking.
//
// Invariant: ItemCount equals len(VaultDocument.Items) after every
// successful write performed by the vault service.
type VaultMetadata struct {
	Version    uint32    `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	ItemCount  int       `json:"itemCount"`
}
