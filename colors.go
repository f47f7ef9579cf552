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

	"github.com/cybrota/avlmap/avl"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ColorScheme holds the styles used for balance factors and messages.
type ColorScheme struct {
	Balanced   lipgloss.Style
	LeftHeavy  lipgloss.Style
	RightHeavy lipgloss.Style
	Key        lipgloss.Style
	Value      lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
}

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode

	Green, Reset string
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"; low background numbers are dark
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Balanced:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		LeftHeavy:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		RightHeavy: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Key:        lipgloss.NewStyle().Bold(true),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Balanced:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		LeftHeavy:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		RightHeavy: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Key:        lipgloss.NewStyle().Bold(true),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// InitializeColors detects terminal mode and sets up the appropriate color scheme
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Reset = GetANSIColors()
}

// DisableColors blanks the raw escape codes so plain fmt output stays uncolored.
func DisableColors() {
	Green, Reset = "", ""
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetANSIColors returns raw escape codes for plain fmt output.
func GetANSIColors() (success, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
	} else {
		success = "\033[92m"
	}

	reset = "\033[0m"
	return
}

// StyleBalance returns the style for a balance factor tag.
func StyleBalance(bf avl.BalanceFactor) lipgloss.Style {
	scheme := GetColorScheme()
	switch bf {
	case avl.LeftHeavy:
		return scheme.LeftHeavy
	case avl.RightHeavy:
		return scheme.RightHeavy
	default:
		return scheme.Balanced
	}
}
