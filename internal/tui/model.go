// Package tui is the interactive dashboard: status charts, the task table,
// and the history panel over one session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"itdash/internal/action"
	"itdash/internal/charts"
	"itdash/internal/history"
	"itdash/internal/session"
)

// TickInterval is how often deferred work is run.
const TickInterval = 100 * time.Millisecond

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirm
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the dashboard's bubbletea model.
type Model struct {
	sess   *session.Controller
	prompt *Prompter
	charts []charts.Chart

	mode     mode
	cursor   int
	input    textinput.Model
	targetID string // task being edited or confirmed
	question string
}

// New returns a dashboard model over sess. prompt must be the prompter
// sess was created with.
func New(sess *session.Controller, prompt *Prompter) *Model {
	in := textinput.New()
	in.CharLimit = 200
	in.Width = 50
	return &Model{
		sess:   sess,
		prompt: prompt,
		charts: charts.All(),
		input:  in,
	}
}

// Cursor returns the selected row.
func (m *Model) Cursor() int { return m.cursor }

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.sess.Scheduler().RunDue()
		m.report(m.sess.Err())
		m.clampCursor()
		return m, tickCmd()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if _, ok := m.prompt.Current(); ok {
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc:
				m.prompt.Dismiss()
			}
			return m, nil
		}
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.sess.Tasks()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "New task"
		m.input.SetValue("")
		return m, m.input.Focus()
	case "e":
		if len(tasks) == 0 {
			return m, nil
		}
		rec := tasks[m.cursor]
		if rec.Done {
			// The session refuses and shows why.
			_, err := m.sess.Edit(m.cursor, rec.Text)
			m.report(err)
			return m, nil
		}
		m.mode = modeEdit
		m.targetID = rec.ID
		m.input.Placeholder = ""
		m.input.SetValue(rec.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case " ", "x":
		if len(tasks) == 0 {
			return m, nil
		}
		_, err := m.sess.ToggleDone(m.cursor)
		m.report(err)
	case "d":
		if len(tasks) == 0 {
			return m, nil
		}
		rec := tasks[m.cursor]
		if m.sess.PendingRemoval(rec.ID) {
			_, err := m.sess.Remove(m.cursor)
			m.report(err)
			return m, nil
		}
		m.mode = modeConfirm
		m.targetID = rec.ID
		m.question = session.DeletePrompt(rec.Text)
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		adding := m.mode == modeAdd
		id := m.targetID
		m.closeInput()
		if adding {
			if _, err := m.sess.Add(value); err != nil {
				m.report(err)
				return m, nil
			}
			m.cursor = len(m.sess.Tasks()) - 1
			return m, nil
		}
		if index := m.sess.Index(id); index >= 0 {
			_, err := m.sess.Edit(index, value)
			m.report(err)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := m.targetID
		m.mode = modeBrowse
		if index := m.sess.Index(id); index >= 0 {
			m.prompt.confirmed(func() {
				_, err := m.sess.Remove(index)
				m.report(err)
			})
		}
	case "n", "N", "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeBrowse
	m.targetID = ""
}

// report queues a notice for errors the session has not shown yet.
func (m *Model) report(err error) {
	if err == nil || session.Noticed(err) {
		return
	}
	m.prompt.Notice("error: " + err.Error())
}

func (m *Model) clampCursor() {
	n := len(m.sess.Tasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("IT Dashboard"))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Status"))
	b.WriteString("\n")
	b.WriteString(charts.Summary(m.charts, 20))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Tasks"))
	b.WriteString("\n")
	m.viewTasks(&b)
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("History"))
	b.WriteString("\n")
	m.viewHistory(&b)
	b.WriteString("\n")

	if overlay := m.viewOverlay(); overlay != "" {
		b.WriteString(overlay)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("a add · e edit · space toggle · d delete · j/k move · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewTasks(b *strings.Builder) {
	tasks := m.sess.Tasks()
	if len(tasks) == 0 {
		b.WriteString(helpStyle.Render("  no tasks yet, press a to add one"))
		b.WriteString("\n")
		return
	}
	for i, rec := range tasks {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		box := "[ ]"
		base := rowStyle
		if rec.Done {
			box = "[x]"
			base = doneStyle
		}
		if m.sess.PendingRemoval(rec.ID) {
			base = pendingStyle
		}
		style := base
		if class, ok := m.sess.Highlight(action.RowTarget(rec.ID)); ok {
			style = flash(class, base)
		}
		fmt.Fprintf(b, "%s%s\n", prefix, style.Render(fmt.Sprintf("%2d %s %s", i+1, box, rec.Text)))
	}
}

func (m *Model) viewHistory(b *strings.Builder) {
	entries := m.sess.History()
	if len(entries) == 0 {
		b.WriteString(helpStyle.Render("  no actions yet"))
		b.WriteString("\n")
		return
	}
	for _, e := range entries {
		line := history.PlainText(e.Message)
		if class, ok := m.sess.Highlight(action.EntryTarget(e.Seq)); ok {
			line = flash(class, helpStyle).Render(line)
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func (m *Model) viewOverlay() string {
	if notice, ok := m.prompt.Current(); ok {
		return modalStyle.Render(notice + "\n" + helpStyle.Render("enter to dismiss"))
	}
	switch m.mode {
	case modeAdd:
		return modalStyle.Render("Add task\n" + m.input.View())
	case modeEdit:
		return modalStyle.Render("Edit task\n" + m.input.View())
	case modeConfirm:
		return modalStyle.Render(m.question + "\n" + helpStyle.Render("y confirm · n cancel"))
	}
	return ""
}

// Run shows the dashboard until the user quits or ctx is done.
func Run(ctx context.Context, sess *session.Controller, prompt *Prompter) error {
	p := tea.NewProgram(New(sess, prompt), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
