// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ui "github.com/gizak/termui/v3"
)

// palette holds the colors of both viewers: termui for the classic view,
// lipgloss for the browser.
type palette struct {
	Border       ui.Color
	BorderFocus  ui.Color
	Text         ui.Color
	Selected     ui.Color
	SelectedText ui.Color

	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
	Alert     lipgloss.Color
}

type terminalMode int

const (
	terminalModeDark terminalMode = iota
	terminalModeLight
)

var (
	currentPalette *palette
	detectedMode   terminalMode

	// ANSI escapes for plain command output, set by initColors.
	Green, Info, Warning, Error, Reset string
)

func init() {
	initColors()
}

// modeFromTheme reads names like "solarized-dark".
func modeFromTheme(theme string) (terminalMode, bool) {
	theme = strings.ToLower(theme)
	switch {
	case strings.Contains(theme, "dark"):
		return terminalModeDark, true
	case strings.Contains(theme, "light"):
		return terminalModeLight, true
	}
	return terminalModeDark, false
}

// detectTerminalMode guesses whether the terminal background is light,
// defaulting to dark.
func detectTerminalMode() terminalMode {
	// COLORFGBG is "foreground;background"
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return terminalModeDark
			case "7", "15", "255":
				return terminalModeLight
			}
		}
	}
	for _, env := range []string{"TERM_THEME", "THEME"} {
		if mode, ok := modeFromTheme(os.Getenv(env)); ok {
			return mode
		}
	}
	return terminalModeDark
}

func lightPalette() *palette {
	return &palette{
		Border:       ui.Color(8),
		BorderFocus:  ui.Color(4),
		Text:         ui.ColorBlack,
		Selected:     ui.Color(4),
		SelectedText: ui.ColorWhite,
		Accent:       lipgloss.Color("25"),
		Muted:        lipgloss.Color("240"),
		Highlight:    lipgloss.Color("28"),
		Alert:        lipgloss.Color("160"),
	}
}

func darkPalette() *palette {
	return &palette{
		Border:       ui.Color(240),
		BorderFocus:  ui.Color(14),
		Text:         ui.ColorWhite,
		Selected:     ui.Color(6),
		SelectedText: ui.ColorBlack,
		Accent:       lipgloss.Color("86"),
		Muted:        lipgloss.Color("245"),
		Highlight:    lipgloss.Color("120"),
		Alert:        lipgloss.Color("203"),
	}
}

func initColors() {
	detectedMode = detectTerminalMode()
	if detectedMode == terminalModeLight {
		currentPalette = lightPalette()
		Green, Info, Warning, Error = "\033[32m", "\033[34m", "\033[33m", "\033[31m"
	} else {
		currentPalette = darkPalette()
		Green, Info, Warning, Error = "\033[92m", "\033[96m", "\033[93m", "\033[91m"
	}
	Reset = "\033[0m"
}

func styleBorder(focused bool) ui.Style {
	if focused {
		return ui.NewStyle(currentPalette.BorderFocus)
	}
	return ui.NewStyle(currentPalette.Border)
}

func styleText() ui.Style {
	return ui.NewStyle(currentPalette.Text)
}

func styleSelected() ui.Style {
	return ui.NewStyle(currentPalette.SelectedText, currentPalette.Selected)
}
