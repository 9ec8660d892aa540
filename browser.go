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
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-shellwords"

	"github.com/cybrota/ordset/avl"
)

var errUnknownCommand = errors.New("unknown command")

const browserCommandHelp = "insert <v>... | remove <v>... | find <v>... | clear | check"

// parseBrowserCommand splits a prompt line the way a shell would, so
// values with spaces can be quoted.
func parseBrowserCommand(line string) (string, []string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return "", nil, err
	}
	if len(words) == 0 {
		return "", nil, nil
	}
	return strings.ToLower(words[0]), words[1:], nil
}

// applyCommand runs one prompt line against s and returns a status
// message for the user.
func applyCommand(s store, line string) (string, error) {
	name, args, err := parseBrowserCommand(line)
	if err != nil {
		return "", fmt.Errorf("cannot parse %q: %w", line, err)
	}

	switch name {
	case "":
		return "", nil
	case "insert", "add", "i":
		if len(args) == 0 {
			return "", errors.New("usage: insert <value>...")
		}
		added := 0
		for _, arg := range args {
			ok, err := s.AddString(arg)
			if err != nil {
				return fmt.Sprintf("inserted %d", added), err
			}
			if ok {
				added++
			}
		}
		return fmt.Sprintf("inserted %d, %d already present", added, len(args)-added), nil
	case "remove", "rm", "r":
		if len(args) == 0 {
			return "", errors.New("usage: remove <value>...")
		}
		removed, missing := 0, 0
		for _, arg := range args {
			err := s.RemoveString(arg)
			switch {
			case err == nil:
				removed++
			case errors.Is(err, avl.ErrNotFound):
				missing++
			default:
				return fmt.Sprintf("removed %d", removed), err
			}
		}
		return fmt.Sprintf("removed %d, %d not found", removed, missing), nil
	case "find", "f":
		if len(args) == 0 {
			return "", errors.New("usage: find <value>...")
		}
		var found, absent []string
		for _, arg := range args {
			ok, err := s.HasString(arg)
			if err != nil {
				return "", err
			}
			if ok {
				found = append(found, arg)
			} else {
				absent = append(absent, arg)
			}
		}
		return fmt.Sprintf("found [%s], absent [%s]", strings.Join(found, " "), strings.Join(absent, " ")), nil
	case "clear":
		s.Reset()
		return "cleared", nil
	case "check":
		if err := s.Check(); err != nil {
			return "", err
		}
		return fmt.Sprintf("ok: %d values, height %d", s.Count(), s.Height()), nil
	case "help":
		return browserCommandHelp, nil
	}
	return "", fmt.Errorf("%w %q, try: %s", errUnknownCommand, name, browserCommandHelp)
}

// browserStyles holds all the styling for the browser
type browserStyles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
}

func newBrowserStyles(p *palette) *browserStyles {
	return &browserStyles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted),
		Title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true),
		HelpDesc:    lipgloss.NewStyle().Foreground(p.Muted),
		Status:      lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(p.Alert).Bold(true),
	}
}

// valueItem is one set member in the values list
type valueItem string

func (i valueItem) FilterValue() string { return string(i) }
func (i valueItem) Title() string       { return string(i) }
func (i valueItem) Description() string { return "" }

type browserFocus int

const (
	focusInput browserFocus = iota
	focusValues
	focusStructure
)

// browserModel is the bubbletea state of the interactive browser.
type browserModel struct {
	store   store
	renders *renderCache
	load    *LoadStats

	input     textinput.Model
	values    list.Model
	structure viewport.Model
	stats     viewport.Model

	focus     browserFocus
	outline   bool // show the outline instead of the sideways print
	status    string
	statusErr bool

	styles   *browserStyles
	markdown *glamour.TermRenderer

	ready  bool
	width  int
	height int
}

func newBrowserModel(s store, renders *renderCache, load *LoadStats) browserModel {
	ti := textinput.New()
	ti.Placeholder = browserCommandHelp
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	values := list.New(nil, delegate, 0, 0)
	values.SetShowTitle(false)
	values.SetShowHelp(false)
	values.SetShowStatusBar(false)
	values.SetFilteringEnabled(false)

	markdown, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		ordsLog.Warnf("markdown renderer unavailable: %v", err)
		markdown = nil
	}

	m := browserModel{
		store:     s,
		renders:   renders,
		load:      load,
		input:     ti,
		values:    values,
		structure: viewport.New(0, 0),
		stats:     viewport.New(0, 0),
		styles:    newBrowserStyles(currentPalette),
		markdown:  markdown,
	}
	m.refresh()
	return m
}

// refresh reloads every pane from the store.
func (m *browserModel) refresh() {
	lines := m.store.Lines()
	items := make([]list.Item, len(lines))
	for i, line := range lines {
		items[i] = valueItem(line)
	}
	m.values.SetItems(items)

	if m.outline {
		m.structure.SetContent(m.renders.get("outline", m.store, func() string {
			return outlineText(m.store.Outline())
		}))
	} else {
		m.structure.SetContent(m.renders.get("print", m.store, func() string {
			return printString(m.store)
		}))
	}

	m.stats.SetContent(m.renders.get(statsRenderKind(m.store), m.store, func() string {
		md := statsMarkdown(m.store, m.load)
		if m.markdown == nil {
			return md
		}
		rendered, err := m.markdown.Render(md)
		if err != nil {
			return md
		}
		return rendered
	}))
}

// statsRenderKind keys the stats render on the lookup counters too, since
// find changes them without a new revision.
func statsRenderKind(s store) string {
	return fmt.Sprintf("stats-md@%d", s.Stats().Lookups)
}

func (m *browserModel) setStatus(msg string, err error) {
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.status = msg
	m.statusErr = false
}

func (m browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % 3
			if m.focus == focusInput {
				m.input.Focus()
			} else {
				m.input.Blur()
			}
			return m, nil
		case "ctrl+o":
			m.outline = !m.outline
			m.refresh()
			return m, nil
		case "ctrl+y":
			export := m.renders.get("export", m.store, func() string { return exportString(m.store) })
			if err := clipboard.WriteAll(export); err != nil {
				m.setStatus("", fmt.Errorf("copy failed: %w", err))
			} else {
				m.setStatus(fmt.Sprintf("copied export of %d values", m.store.Count()), nil)
			}
			return m, nil
		case "enter":
			if m.focus == focusInput {
				line := m.input.Value()
				status, err := applyCommand(m.store, line)
				m.setStatus(status, err)
				if err == nil {
					m.input.SetValue("")
				}
				ordsLog.Debugf("browser command %q: %s", line, m.status)
				m.refresh()
				return m, nil
			}
			if m.focus == focusValues {
				if item, ok := m.values.SelectedItem().(valueItem); ok {
					m.input.SetValue("remove " + shellQuote(string(item)))
					m.focus = focusInput
					m.input.Focus()
					m.input.CursorEnd()
				}
				return m, nil
			}
		}

		switch m.focus {
		case focusInput:
			m.input, cmd = m.input.Update(msg)
		case focusValues:
			m.values, cmd = m.values.Update(msg)
		case focusStructure:
			m.structure, cmd = m.structure.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// shellQuote quotes v so parseBrowserCommand reads it back as one word.
func shellQuote(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\"'\\$`&|;<>()") {
		return v
	}
	return "'" + strings.ReplaceAll(v, "'", `'"'"'`) + "'"
}

func (m *browserModel) updateLayout() {
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 3 - 6
	structureHeight := bodyHeight * 6 / 10

	m.input.Width = leftWidth - 6
	m.values.SetSize(leftWidth-2, bodyHeight-2)
	m.structure.Width = rightWidth - 2
	m.structure.Height = structureHeight
	m.stats.Width = rightWidth - 2
	m.stats.Height = bodyHeight - structureHeight
}

func (m browserModel) box(title string, focused bool, width, height int, content string) string {
	style := m.styles.BorderBlurred
	if focused {
		style = m.styles.BorderFocused
		title += " (Active)"
	}
	return style.
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			content,
		))
}

func (m browserModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 3 - 6

	inputBox := m.box("Command", m.focus == focusInput, leftWidth, 3, m.input.View())
	valuesBox := m.box(fmt.Sprintf("Values (%d)", m.store.Count()), m.focus == focusValues,
		leftWidth, bodyHeight, m.values.View())

	structureTitle := "Structure"
	if m.outline {
		structureTitle = "Outline"
	}
	structureBox := m.box(structureTitle, m.focus == focusStructure,
		rightWidth, m.structure.Height+1, m.structure.View())
	statsBox := m.box("Stats", false, rightWidth, m.stats.Height+1, m.stats.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, valuesBox),
		lipgloss.JoinVertical(lipgloss.Left, structureBox, statsBox),
	)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatus(), m.renderHelp())
}

func (m browserModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.StatusError.Render(" " + m.status)
	}
	return m.styles.Status.Render(" " + m.status)
}

func (m browserModel) renderHelp() string {
	keys := []string{"enter", "tab", "ctrl+o", "ctrl+y", "esc"}
	descs := []string{"run command", "switch focus", "print/outline", "copy export", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}
	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBrowser starts the interactive browser on s.
func runBrowser(s store, renders *renderCache, load *LoadStats) error {
	logToConsole = false
	defer func() { logToConsole = true }()

	p := tea.NewProgram(newBrowserModel(s, renders, load), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
