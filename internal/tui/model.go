// Package tui implements the interactive Bubble Tea front end.
//
// One Model holds all state. Every user action maps to one vault call,
// issued as a tea.Cmd whose result comes back as a message.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pbaille/mindvault/internal/domain"
	"github.com/pbaille/mindvault/internal/vault"
)

// ─── Screens ─────────────────────────────────────────────────────────────────

type Screen int

const (
	ScreenBrowse Screen = iota
	ScreenInput
	ScreenDetail
)

// InputMode says what the text input submits to
type InputMode int

const (
	InputAdd InputMode = iota
	InputSearch
	InputTag
)

func (m InputMode) prompt() string {
	switch m {
	case InputSearch:
		return "Search: "
	case InputTag:
		return "Tag: "
	default:
		return "Note: "
	}
}

func (m InputMode) placeholder() string {
	switch m {
	case InputSearch:
		return "keyword in note text..."
	case InputTag:
		return "tag, e.g. focus..."
	default:
		return "type your note and press enter..."
	}
}

// ─── Messages ────────────────────────────────────────────────────────────────

type notesLoadedMsg struct {
	notes []domain.Note
	title string
	err   error
}

type noteAddedMsg struct {
	note domain.Note
	err  error
}

type statsLoadedMsg struct {
	stats *domain.Stats
	err   error
}

// ─── Model ───────────────────────────────────────────────────────────────────

type Model struct {
	vault *vault.Service
	ctx   context.Context
	limit int

	Screen Screen
	Width  int
	Height int
	Cursor int
	Scroll int

	ErrorMsg string
	Flash    string

	Stats     *domain.Stats
	Notes     []domain.Note
	ListTitle string

	Input     textinput.Model
	InputMode InputMode
}

// New creates a TUI model over v; the browse list shows limit recent notes.
func New(ctx context.Context, v *vault.Service, limit int) Model {
	ti := textinput.New()
	ti.CharLimit = 1024
	ti.Width = 60

	return Model{
		vault:  v,
		ctx:    ctx,
		limit:  limit,
		Screen: ScreenBrowse,
		Input:  ti,
	}
}

// Init loads the recent notes and the stats header.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadRecent(m.ctx, m.vault, m.limit),
		loadStats(m.ctx, m.vault),
	)
}

// ─── Commands ────────────────────────────────────────────────────────────────

func loadRecent(ctx context.Context, v *vault.Service, limit int) tea.Cmd {
	return func() tea.Msg {
		notes, err := v.Recent(ctx, limit)
		return notesLoadedMsg{notes: notes, title: "Recent notes", err: err}
	}
}

func loadAll(ctx context.Context, v *vault.Service) tea.Cmd {
	return func() tea.Msg {
		notes, err := v.All(ctx)
		return notesLoadedMsg{notes: notes, title: "All notes", err: err}
	}
}

func searchContent(ctx context.Context, v *vault.Service, keyword string) tea.Cmd {
	return func() tea.Msg {
		notes, err := v.Search(ctx, keyword)
		return notesLoadedMsg{notes: notes, title: "Notes containing " + quote(keyword), err: err}
	}
}

func searchTag(ctx context.Context, v *vault.Service, tag string) tea.Cmd {
	return func() tea.Msg {
		notes, err := v.SearchTag(ctx, tag)
		return notesLoadedMsg{notes: notes, title: "Notes tagged " + quote(tag), err: err}
	}
}

func addNote(ctx context.Context, v *vault.Service, content string) tea.Cmd {
	return func() tea.Msg {
		note, err := v.Add(ctx, content, "")
		return noteAddedMsg{note: note, err: err}
	}
}

func loadStats(ctx context.Context, v *vault.Service) tea.Cmd {
	return func() tea.Msg {
		stats, err := v.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func quote(s string) string {
	return "\"" + s + "\""
}
