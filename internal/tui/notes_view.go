package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-note-keeper/models"
)

const maxRowText = 60

func (m notesModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	page := renderPage("Notes", m.renderBody(), m.hotKeys())
	if m.overlay != nil {
		return lipgloss.JoinVertical(lipgloss.Left, page, m.overlay.View())
	}
	return page
}

func (m notesModel) renderBody() string {
	var b strings.Builder

	b.WriteString(m.focusMark(focusNewNote) + "New note: " + m.newNote.View() + "\n")
	b.WriteString(m.focusMark(focusSearch) + "Search:   " + m.search.View() + "\n")
	b.WriteString("  " + checkbox(m.showCompleted, "Show completed only (ctrl+t)") + "\n\n")

	if len(m.rows) == 0 {
		b.WriteString("  No notes\n")
	}
	for i, row := range m.rows {
		b.WriteString(m.renderRow(i, row))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m notesModel) renderRow(i int, row models.Row) string {
	cursor := "  "
	if m.focus == focusList && i == m.idx {
		cursor = cursorStyle.Render("> ")
	}

	text := fitText(row.Text, maxRowText)
	if row.Style == models.RowStyleCompleted {
		text = completedStyle.Render(text)
	}

	actions := actionStyle.Render(fmt.Sprintf("[%s] [%s]", row.ToggleLabel, row.DeleteLabel))
	return cursor + text + "  " + actions
}

func (m notesModel) focusMark(f focusArea) string {
	if m.focus == f {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func (m notesModel) hotKeys() string {
	switch m.focus {
	case focusNewNote:
		return "enter: add  tab: next field  esc: quit"
	case focusSearch:
		return "type to filter  enter: go to list  tab: next field  esc: quit"
	default:
		return "↑/↓: move  space: toggle  d: delete  y: copy  v: about  tab: next field  esc: quit"
	}
}
