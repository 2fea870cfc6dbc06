// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel is the Bubble Tea model of the master password prompt. With
// confirm set it renders a second input that must repeat the first.
type passwordModel struct {
	title  string
	inputs []textinput.Model
	focus  int
	errMsg string

	password string
	done     bool
	quit     bool
}

func newPasswordModel(title string, confirm bool) *passwordModel {
	labels := []string{"master password"}
	if confirm {
		labels = append(labels, "repeat password")
	}

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 256
		in.Width = 40
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	inputs[0].Focus()

	return &passwordModel{title: title, inputs: inputs}
}

func (m *passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - esc, ctrl+c: abandon the prompt.
//   - tab, shift+tab: move between inputs.
//   - enter: on the last input, validate and finish; otherwise move on.
//
// All other key events go to the focused input.
func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focusNext()
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *passwordModel) submit() tea.Cmd {
	pass := m.inputs[0].Value()
	if pass == "" {
		m.errMsg = "password is required"
		return nil
	}
	if len(m.inputs) > 1 && m.inputs[1].Value() != pass {
		m.errMsg = "passwords do not match"
		m.inputs[1].SetValue("")
		return nil
	}

	m.errMsg = ""
	m.password = pass
	m.done = true
	return tea.Quit
}

func (m *passwordModel) View() string {
	if m.done || m.quit {
		return ""
	}

	var b strings.Builder
	for _, in := range m.inputs {
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm")
}

func (m *passwordModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *passwordModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
