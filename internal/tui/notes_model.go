// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/models"
)

type focusArea int

const (
	focusNewNote focusArea = iota
	focusSearch
	focusList
	focusCount
)

const (
	inputWidth    = 50
	noteCharLimit = 500
	statusTimeout = 2 * time.Second
)

// copyToClipboard is swapped in tests; there is no clipboard on CI machines.
var copyToClipboard = clipboard.WriteAll

// notesModel is the single screen of the widget. All handler calls happen
// synchronously inside Update, one event at a time.
type notesModel struct {
	ctx       context.Context
	handler   *handler.Handler
	buildInfo models.AppBuildInfo

	newNote       textinput.Model
	search        textinput.Model
	showCompleted bool

	rows  []models.Row
	idx   int
	focus focusArea

	status        string
	overlay       *errorOverlayModel
	showBuildInfo bool
}

func newNotesModel(ctx context.Context, h *handler.Handler, buildInfo models.AppBuildInfo) notesModel {
	newNote := textinput.New()
	newNote.Placeholder = "Write a note..."
	newNote.CharLimit = noteCharLimit
	newNote.Width = inputWidth
	newNote.Focus()

	search := textinput.New()
	search.Placeholder = "Search..."
	search.Width = inputWidth

	return notesModel{
		ctx:       ctx,
		handler:   h,
		buildInfo: buildInfo,
		newNote:   newNote,
		search:    search,
		focus:     focusNewNote,
	}
}

func (m notesModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return readyMsg{} })
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case readyMsg:
		rows, err := m.handler.OnReady(m.ctx)
		return m.applyRows(rows, err), nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		width := max(msg.Width-20, 10)
		m.newNote.Width = min(width, inputWidth)
		m.search.Width = min(width, inputWidth)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(keyMsg, keys.backtab):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(keyMsg, keys.showCompleted):
		m.showCompleted = !m.showCompleted
		rows, err := m.handler.OnShowCompleted(m.ctx, m.showCompleted)
		return m.applyRows(rows, err), nil
	}

	switch m.focus {
	case focusNewNote:
		return m.updateNewNote(keyMsg)
	case focusSearch:
		return m.updateSearch(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m notesModel) updateNewNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, keys.enter) {
		var cmd tea.Cmd
		m.newNote, cmd = m.newNote.Update(msg)
		return m, cmd
	}

	rows, input, err := m.handler.OnAdd(m.ctx, m.newNote.Value())
	if err != nil {
		return m.applyRows(nil, err), nil
	}
	if rows == nil {
		// blank input, nothing was added
		return m, nil
	}

	m.newNote.SetValue(input)
	m = m.applyRows(rows, nil)
	m.status = "Note added"
	return m, cmdClearStatus()
}

func (m notesModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		return m.setFocus(focusList)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != m.handler.Filter().Query {
		rows, err := m.handler.OnSearch(m.ctx, m.search.Value())
		m = m.applyRows(rows, err)
	}
	return m, cmd
}

func (m notesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggle, keys.enter):
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		rows, err := m.handler.OnToggle(m.ctx, row.ID)
		return m.applyRows(rows, err), nil
	case key.Matches(msg, keys.delete):
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		rows, err := m.handler.OnDelete(m.ctx, row.ID)
		m = m.applyRows(rows, err)
		if err == nil {
			m.status = "Note deleted"
			return m, cmdClearStatus()
		}
		return m, nil
	case key.Matches(msg, keys.buildInfo):
		// list only: in the text fields "v" is a letter
		m.showBuildInfo = true
	case key.Matches(msg, keys.copy):
		row, ok := m.current()
		if !ok {
			m.overlay = &errorOverlayModel{message: errNoRow.Error()}
			return m, nil
		}
		if err := copyToClipboard(row.Text); err != nil {
			m.overlay = &errorOverlayModel{message: fmt.Sprintf("Copy failed: %v", err)}
			return m, nil
		}
		m.status = "Copied"
		return m, cmdClearStatus()
	}

	return m, nil
}

// updateFocusedInput forwards non-key messages, such as cursor blinks, to
// the focused text input.
func (m notesModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusNewNote:
		m.newNote, cmd = m.newNote.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m notesModel) setFocus(f focusArea) (tea.Model, tea.Cmd) {
	m.focus = f
	m.newNote.Blur()
	m.search.Blur()

	var cmd tea.Cmd
	switch f {
	case focusNewNote:
		cmd = m.newNote.Focus()
	case focusSearch:
		cmd = m.search.Focus()
	}
	return m, cmd
}

// applyRows replaces the whole row list with a fresh render, or opens the
// error overlay when the event failed.
func (m notesModel) applyRows(rows []models.Row, err error) notesModel {
	if err != nil {
		m.overlay = &errorOverlayModel{message: humanizeStoreError(err)}
		return m
	}

	m.rows = rows
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m notesModel) current() (models.Row, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return models.Row{}, false
	}
	return m.rows[m.idx], true
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
