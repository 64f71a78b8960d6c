package tui

import (
	"fmt"
	"strings"

	"github.com/pbaille/mindvault/internal/domain"
)

const banner = "M I N D V A U L T\nsecond brain, terminal-powered"

// ─── View ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(bannerStyle.Render(banner))
	b.WriteString("\n")
	b.WriteString(m.viewStats())
	b.WriteString("\n")

	switch m.Screen {
	case ScreenDetail:
		b.WriteString(m.viewDetail())
	case ScreenInput:
		b.WriteString(m.viewList())
		b.WriteString("\n")
		b.WriteString(inputStyle.Render(m.Input.View()))
		b.WriteString(helpStyle.Render("\n  enter submit • esc cancel"))
	default:
		b.WriteString(m.viewList())
		b.WriteString(helpStyle.Render("\n  a add • / search • t tag • r recent • A all • j/k move • enter open • q quit"))
	}

	if m.Flash != "" {
		b.WriteString("\n" + flashStyle.Render(m.Flash))
	}
	if m.ErrorMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.ErrorMsg))
	}

	return appStyle.Render(b.String())
}

func (m Model) viewStats() string {
	if m.Stats == nil {
		return statsStyle.Render("loading...")
	}
	return statsStyle.Render(fmt.Sprintf("%d notes  •  %d positive  •  %d neutral  •  %d negative",
		m.Stats.Total,
		m.Stats.BySentiment[domain.Positive],
		m.Stats.BySentiment[domain.Neutral],
		m.Stats.BySentiment[domain.Negative],
	))
}

func (m Model) viewList() string {
	var b strings.Builder

	title := m.ListTitle
	if title == "" {
		title = "Recent notes"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", title, len(m.Notes))))
	b.WriteString("\n")

	if len(m.Notes) == 0 {
		b.WriteString(noResultsStyle.Render("No notes. Press a to add one."))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Scroll + m.visibleItems()
	if end > len(m.Notes) {
		end = len(m.Notes)
	}
	for i := m.Scroll; i < end; i++ {
		n := m.Notes[i]
		line := idStyle.Render(fmt.Sprintf("#%d", n.ID)) + " " + n.Preview(70)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("%s  %s  %s",
			timestampStyle.Render(n.DisplayTime()),
			tagStyle.Render(n.Tags),
			sentimentStyle(n.Sentiment).Render(n.Sentiment.String()),
		)))
		b.WriteString("\n")
	}

	if len(m.Notes) > end {
		b.WriteString(timestampStyle.Render(fmt.Sprintf("    ...and %d more", len(m.Notes)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewDetail() string {
	if m.Cursor >= len(m.Notes) {
		return noResultsStyle.Render("Nothing selected.")
	}
	n := m.Notes[m.Cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Note #%d", n.ID)))
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(detailLabelStyle.Render(label) + detailValueStyle.Render(value) + "\n")
	}
	row("Created", n.DisplayTime())
	row("Tags", n.Tags)
	row("Sentiment", n.Sentiment.String())
	b.WriteString("\n")
	b.WriteString(detailValueStyle.Render(n.Content))
	b.WriteString(helpStyle.Render("\n  j/k prev/next • esc back"))
	return b.String()
}
