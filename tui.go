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
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// REPLStyles holds the lipgloss styles for the interactive prompt.
type REPLStyles struct {
	Title   lipgloss.Style
	Command lipgloss.Style
	Border  lipgloss.Style
	Help    lipgloss.Style
}

func NewREPLStyles(color bool) *REPLStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return &REPLStyles{
			Title:   plain.Bold(true),
			Command: plain,
			Border:  plain.Border(lipgloss.NormalBorder()),
			Help:    plain,
		}
	}
	return &REPLStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// REPLModel runs script commands typed into a text input and shows the
// tree after every command.
type REPLModel struct {
	session   *Session
	output    *bytes.Buffer
	textInput textinput.Model
	viewport  viewport.Model
	styles    *REPLStyles

	lastCommand string
	lastResult  string

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewREPLModel starts an interactive session on an empty map.
func NewREPLModel(display DisplayConfig) REPLModel {
	output := &bytes.Buffer{}

	ti := textinput.New()
	ti.Placeholder = "upsert 10 ten"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	vp := viewport.New(0, 0)

	m := REPLModel{
		session:   NewSession(output, display),
		output:    output,
		textInput: ti,
		viewport:  vp,
		styles:    NewREPLStyles(display.Color),
	}
	m.refresh()
	return m
}

func (m REPLModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m REPLModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.execute() {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		case "pgup", "pgdown":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// execute runs the typed line and reports whether the session asked to quit.
func (m *REPLModel) execute() bool {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()
	if line == "" {
		return false
	}

	m.output.Reset()
	err := m.session.Exec(line)
	if errors.Is(err, errQuit) {
		return true
	}

	m.lastCommand = line
	if err != nil {
		m.lastResult = m.session.errorLine(err)
	} else {
		m.lastResult = strings.TrimRight(m.output.String(), "\n")
	}
	m.refresh()
	return false
}

func (m *REPLModel) refresh() {
	var b strings.Builder
	if m.lastCommand != "" {
		b.WriteString(m.styles.Command.Render("> " + m.lastCommand))
		b.WriteString("\n")
		if m.lastResult != "" {
			b.WriteString(m.lastResult)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(renderTree(m.session.Tree, m.session.Display))
	fmt.Fprintf(&b, "entries=%d height=%d\n", m.session.Tree.Len(), m.session.Tree.Height())
	m.viewport.SetContent(b.String())
}

func (m *REPLModel) updateLayout() {
	// title, input, help and the viewport border
	chrome := 6
	m.textInput.Width = max(m.width-len(m.textInput.Prompt)-2, 10)
	m.viewport.Width = max(m.width-2, 10)
	m.viewport.Height = max(m.height-chrome, 3)
}

func (m REPLModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Title.Render(fmt.Sprintf("avlmap %s", version)),
		m.textInput.View(),
		m.styles.Border.Render(m.viewport.View()),
		m.styles.Help.Render("enter: run • pgup/pgdown: scroll • esc: quit"),
	)
}

func runBubbleTeaREPL(display DisplayConfig) error {
	program := tea.NewProgram(NewREPLModel(display), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
