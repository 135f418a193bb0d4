// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const minDividerWidth = 54

// renderPage wraps a screen's data block and hotkey hint in a titled frame
// with a divider sized to the widest line, mirroring this application's
// single page-chrome convention across every screen.
func renderPage(title, data, hotKeys string) string {
	var b strings.Builder
	divider := strings.Repeat("─", pageContentWidth(title, data, hotKeys))

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(divider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(divider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func pageContentWidth(title, data, hotKeys string) int {
	width := minDividerWidth
	width = max(width, lipgloss.Width(title))
	width = max(width, maxLineWidth(data))
	width = max(width, maxLineWidth(hotKeys))
	return width
}

func maxLineWidth(block string) int {
	if strings.TrimSpace(block) == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(block, "\n") {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	return maxWidth
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
