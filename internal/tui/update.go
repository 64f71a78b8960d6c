package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ─── Update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.Screen == ScreenInput {
			return m.handleInputKeys(msg)
		}
		return m.handleKeyPress(msg.String())

	case notesLoadedMsg:
		if msg.err != nil {
			m.ErrorMsg = msg.err.Error()
			return m, nil
		}
		m.Notes = msg.notes
		m.ListTitle = msg.title
		m.Screen = ScreenBrowse
		m.Cursor = 0
		m.Scroll = 0
		return m, nil

	case noteAddedMsg:
		if msg.err != nil {
			m.ErrorMsg = msg.err.Error()
			return m, nil
		}
		m.Flash = "Added #" + strconv.FormatInt(msg.note.ID, 10) + "  tags: " + msg.note.Tags + "  mood: " + msg.note.Sentiment.String()
		return m, tea.Batch(loadRecent(m.ctx, m.vault, m.limit), loadStats(m.ctx, m.vault))

	case statsLoadedMsg:
		if msg.err != nil {
			m.ErrorMsg = msg.err.Error()
			return m, nil
		}
		m.Stats = msg.stats
		return m, nil
	}

	return m, nil
}

// ─── Key Press Router ────────────────────────────────────────────────────────

func (m Model) handleKeyPress(key string) (tea.Model, tea.Cmd) {
	m.ErrorMsg = ""

	switch m.Screen {
	case ScreenBrowse:
		return m.handleBrowseKeys(key)
	case ScreenDetail:
		return m.handleDetailKeys(key)
	}
	return m, nil
}

// ─── Browse ──────────────────────────────────────────────────────────────────

func (m Model) handleBrowseKeys(key string) (tea.Model, tea.Cmd) {
	visibleItems := m.visibleItems()

	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Scroll {
				m.Scroll = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.Notes)-1 {
			m.Cursor++
			if m.Cursor >= m.Scroll+visibleItems {
				m.Scroll = m.Cursor - visibleItems + 1
			}
		}
	case "enter":
		if len(m.Notes) > 0 {
			m.Screen = ScreenDetail
		}
	case "a":
		return m.openInput(InputAdd)
	case "/", "s":
		return m.openInput(InputSearch)
	case "t":
		return m.openInput(InputTag)
	case "r":
		m.Flash = ""
		return m, loadRecent(m.ctx, m.vault, m.limit)
	case "A":
		m.Flash = ""
		return m, loadAll(m.ctx, m.vault)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) openInput(mode InputMode) (tea.Model, tea.Cmd) {
	m.Screen = ScreenInput
	m.InputMode = mode
	m.Input.Prompt = mode.prompt()
	m.Input.Placeholder = mode.placeholder()
	m.Input.SetValue("")
	return m, m.Input.Focus()
}

// ─── Input ───────────────────────────────────────────────────────────────────

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.Input.Value())
		if value == "" {
			return m, nil
		}
		m.Input.Blur()
		m.Input.SetValue("")
		m.Screen = ScreenBrowse
		m.ErrorMsg = ""
		switch m.InputMode {
		case InputSearch:
			return m, searchContent(m.ctx, m.vault, value)
		case InputTag:
			return m, searchTag(m.ctx, m.vault, value)
		default:
			return m, addNote(m.ctx, m.vault, value)
		}
	case "esc":
		m.Input.Blur()
		m.Screen = ScreenBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// ─── Detail ──────────────────────────────────────────────────────────────────

func (m Model) handleDetailKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q", "enter":
		m.Screen = ScreenBrowse
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Notes)-1 {
			m.Cursor++
		}
	}
	return m, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// visibleItems is how many 2-line list entries fit under the header
func (m Model) visibleItems() int {
	n := (m.Height - 12) / 2
	if n < 3 {
		n = 3
	}
	return n
}
