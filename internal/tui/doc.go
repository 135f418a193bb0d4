// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface for the passwordless
// vault demo client.
//
// The package is built on top of the Bubble Tea framework
// (github.com/charmbracelet/bubbletea) and follows the Elm architecture:
// each screen is represented by a model with Init, Update, and View
// methods. Navigation between screens is performed via the [navigateMsg]
// message intercepted by the root model [rootModel].
//
// Unlike a client/server application, there is no login/register split:
// the vault starts Uninitialised (first run) or Locked (an existing
// vault.db), and the root model picks the starting screen accordingly.
// The entry point is [Run].
package tui
