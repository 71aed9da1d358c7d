package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"itdash/internal/session"
	"itdash/internal/store"
	"itdash/internal/testutil"
)

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func specialKey(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return keyMsg(k)
	}
}

type harness struct {
	m     *Model
	kv    *testutil.MemStore
	clock *testutil.FakeClock
}

func newHarness(t *testing.T, tasks ...string) *harness {
	t.Helper()
	h := &harness{
		kv:    testutil.NewMemStore(),
		clock: testutil.NewFakeClock(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)),
	}
	p := NewPrompter()
	sess := session.New(h.kv, p, session.Options{Clock: h.clock})
	sess.Load()
	for _, text := range tasks {
		if _, err := sess.Add(text); err != nil {
			t.Fatalf("seed %q: %v", text, err)
		}
	}
	h.m = New(sess, p)
	return h
}

func (h *harness) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		h.m.Update(msg)
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) tick(d time.Duration) {
	h.clock.Advance(d)
	h.m.Update(tickMsg(h.clock.Now()))
}

func TestAddFlow(t *testing.T) {
	h := newHarness(t)
	h.send(keyMsg("a"))
	if !strings.Contains(h.m.View(), "Add task") {
		t.Fatal("expected add modal")
	}
	h.typeText("Buy license")
	h.send(specialKey("enter"))

	tasks := h.m.sess.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "Buy license" {
		t.Fatalf("unexpected tasks %+v", tasks)
	}
	view := h.m.View()
	if !strings.Contains(view, "[ ] Buy license") {
		t.Errorf("expected task row in view:\n%s", view)
	}
	if !strings.Contains(view, `🟢 Added "Buy license"`) {
		t.Errorf("expected history line in view:\n%s", view)
	}
}

func TestAddEmptyShowsNotice(t *testing.T) {
	h := newHarness(t)
	h.send(keyMsg("a"), specialKey("enter"))

	if !strings.Contains(h.m.View(), session.NoticeEmptyAdd) {
		t.Fatal("expected notice modal")
	}
	// Keys other than enter/esc are swallowed by the notice.
	h.send(keyMsg("a"))
	if h.m.mode != modeBrowse {
		t.Error("notice should block other input")
	}
	h.send(specialKey("enter"))
	if strings.Contains(h.m.View(), session.NoticeEmptyAdd) {
		t.Error("expected notice dismissed")
	}
}

func TestToggleKeys(t *testing.T) {
	h := newHarness(t, "Renew cert")
	h.send(specialKey("space"))
	if !h.m.sess.Tasks()[0].Done {
		t.Fatal("space should toggle")
	}
	h.send(keyMsg("x"))
	if h.m.sess.Tasks()[0].Done {
		t.Fatal("x should toggle back")
	}
}

func TestEditFlow(t *testing.T) {
	h := newHarness(t, "Buy license")
	h.send(keyMsg("e"))
	if h.m.input.Value() != "Buy license" {
		t.Fatalf("expected input prefilled, got %q", h.m.input.Value())
	}
	h.typeText("s")
	h.send(specialKey("enter"))
	if got := h.m.sess.Tasks()[0].Text; got != "Buy licenses" {
		t.Errorf("expected edited text, got %q", got)
	}
}

func TestEditDoneTaskBlocked(t *testing.T) {
	h := newHarness(t, "Renew cert")
	h.send(keyMsg("x"), keyMsg("e"))
	if h.m.mode != modeBrowse {
		t.Error("editor should not open for a done task")
	}
	if !strings.Contains(h.m.View(), session.NoticeDoneEdit) {
		t.Error("expected blocking notice")
	}
}

func TestEditEscCancels(t *testing.T) {
	h := newHarness(t, "Buy license")
	h.send(keyMsg("e"))
	h.typeText("zzz")
	h.send(specialKey("esc"))
	if got := h.m.sess.Tasks()[0].Text; got != "Buy license" {
		t.Errorf("esc should keep text, got %q", got)
	}
}

func TestDeleteConfirmAndDelay(t *testing.T) {
	h := newHarness(t, "Old laptop", "Keep me")
	h.send(keyMsg("d"))
	if !strings.Contains(h.m.View(), `Are you sure you want to delete "Old laptop"?`) {
		t.Fatal("expected confirm modal")
	}
	h.send(keyMsg("y"))
	if len(h.m.sess.Tasks()) != 2 {
		t.Fatal("removal should wait for the delay")
	}
	if !strings.Contains(h.m.View(), `🔴 Deleted "Old laptop"`) {
		t.Error("expected Deleted entry right away")
	}

	h.tick(500 * time.Millisecond)
	if len(h.m.sess.Tasks()) != 2 {
		t.Fatal("removal should wait a full second")
	}
	h.tick(500 * time.Millisecond)
	tasks := h.m.sess.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "Keep me" {
		t.Fatalf("unexpected tasks %+v", tasks)
	}
	if stored := h.kv.Raw(store.Tasks); stored != `[{"text":"Keep me","done":false}]` {
		t.Errorf("unexpected stored tasks %q", stored)
	}
}

func TestDeleteDeclined(t *testing.T) {
	h := newHarness(t, "Old laptop")
	h.send(keyMsg("d"), keyMsg("n"))
	h.tick(2 * time.Second)
	if len(h.m.sess.Tasks()) != 1 {
		t.Error("declined delete should keep the task")
	}
	if len(h.m.sess.History()) != 1 {
		t.Error("declined delete should not log")
	}
}

func TestDeletePendingShowsNotice(t *testing.T) {
	h := newHarness(t, "Old laptop")
	h.send(keyMsg("d"), keyMsg("y"), keyMsg("d"))
	if h.m.mode == modeConfirm {
		t.Error("second delete should not ask again")
	}
	if !strings.Contains(h.m.View(), session.NoticePending) {
		t.Error("expected pending notice")
	}
}

func TestCursorMovementAndClamp(t *testing.T) {
	h := newHarness(t, "a", "b", "c")
	h.send(keyMsg("k"))
	if h.m.Cursor() != 0 {
		t.Errorf("cursor should stay at top, got %d", h.m.Cursor())
	}
	h.send(keyMsg("j"), keyMsg("j"), keyMsg("j"))
	if h.m.Cursor() != 2 {
		t.Errorf("cursor should stop at bottom, got %d", h.m.Cursor())
	}
	h.send(keyMsg("d"), keyMsg("y"))
	h.tick(time.Second)
	if h.m.Cursor() != 1 {
		t.Errorf("cursor should clamp after removal, got %d", h.m.Cursor())
	}
}

func TestTickClearsHighlight(t *testing.T) {
	h := newHarness(t, "a")
	id := h.m.sess.Tasks()[0].ID
	if _, ok := h.m.sess.Highlight("row:" + id); !ok {
		t.Fatal("expected highlight after add")
	}
	h.tick(time.Second)
	if _, ok := h.m.sess.Highlight("row:" + id); ok {
		t.Error("expected highlight cleared by tick")
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	_, cmd := h.m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewShowsCharts(t *testing.T) {
	h := newHarness(t)
	view := h.m.View()
	for _, want := range []string{"IT Dashboard", "SGC deployed", "Defender status", "no tasks yet"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
