package history

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

var ts = time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)

func TestRender_Added(t *testing.T) {
	got := Render(Added, "Buy license", ts)
	want := `🟢 Added "Buy license" — <span style="color:#888; font-size:12px;">(3:04:05 PM)</span>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_Icons(t *testing.T) {
	cases := map[Category]string{
		Added:       "🟢 Added ",
		Deleted:     "🔴 Deleted ",
		TaskChanged: "🟣 Task changed ",
		MarkedDone:  "🟡 Marked as done ",
		Unchecked:   "🔵 Unchecked ",
	}
	for c, prefix := range cases {
		if got := Render(c, "x", ts); !strings.HasPrefix(got, prefix) {
			t.Errorf("%s: expected prefix %q, got %q", c, prefix, got)
		}
	}
}

func TestRender_UnknownCategoryHasNoIcon(t *testing.T) {
	got := Render(Category("Archived"), "x", ts)
	if !strings.HasPrefix(got, `Archived "x" — `) {
		t.Errorf("unexpected render %q", got)
	}
	if Category("Archived").Flash() != "" {
		t.Error("unknown category should have no flash class")
	}
}

func TestRender_TaskChanged(t *testing.T) {
	got := PlainText(Render(TaskChanged, ChangedText("old", "new"), ts))
	want := `🟣 Task changed "old" to "new" — (3:04:05 PM)`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_EscapesMarkup(t *testing.T) {
	got := Render(Added, "<b>patch</b> & reboot", ts)
	if strings.Contains(got, "<b>") {
		t.Errorf("task text markup should be escaped: %q", got)
	}
	if plain := PlainText(got); !strings.Contains(plain, `"<b>patch</b> & reboot"`) {
		t.Errorf("plain text should restore the original text, got %q", plain)
	}
}

func TestAppend_MostRecentFirst(t *testing.T) {
	l := NewLog()
	l.Append(Added, "first", ts)
	l.Append(Deleted, "second", ts)

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Category != Deleted || !strings.Contains(entries[0].Message, "second") {
		t.Errorf("expected newest at head, got %+v", entries[0])
	}
}

func TestAppend_CapsAtTwenty(t *testing.T) {
	l := NewLog()
	for i := 1; i <= MaxEntries; i++ {
		l.Append(Added, fmt.Sprintf("task %d", i), ts)
	}
	if l.Len() != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, l.Len())
	}
	oldest := l.Messages()[MaxEntries-1]
	if !strings.Contains(oldest, `"task 1"`) {
		t.Fatalf("expected task 1 at tail, got %q", oldest)
	}

	l.Append(Added, "task 21", ts)
	msgs := l.Messages()
	if len(msgs) != MaxEntries {
		t.Fatalf("expected %d entries after 21st append, got %d", MaxEntries, len(msgs))
	}
	if !strings.Contains(msgs[0], `"task 21"`) {
		t.Errorf("expected task 21 at head, got %q", msgs[0])
	}
	if !strings.Contains(msgs[MaxEntries-1], `"task 2"`) {
		t.Errorf("expected task 2 at tail, got %q", msgs[MaxEntries-1])
	}
	for _, m := range msgs {
		if strings.Contains(m, `"task 1"`) {
			t.Error("oldest entry should have been evicted")
		}
	}
}

func TestRestore_Verbatim(t *testing.T) {
	l := NewLog()
	stored := []string{"newest <i>raw</i>", "older"}
	l.Restore(stored)
	got := l.Messages()
	if len(got) != 2 || got[0] != stored[0] || got[1] != stored[1] {
		t.Errorf("expected verbatim restore, got %v", got)
	}
	if l.Entries()[0].Category != "" {
		t.Error("restored entries carry no category")
	}
}

func TestRestore_TruncatesOversized(t *testing.T) {
	l := NewLog()
	stored := make([]string, 25)
	for i := range stored {
		stored[i] = fmt.Sprintf("m%d", i)
	}
	l.Restore(stored)
	if l.Len() != MaxEntries {
		t.Fatalf("expected %d, got %d", MaxEntries, l.Len())
	}
	if l.Messages()[0] != "m0" {
		t.Errorf("expected head kept, got %q", l.Messages()[0])
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(`🔴 Deleted "a &amp; b" — <span style="color:#888">(1:02:03 AM)</span>`)
	want := `🔴 Deleted "a & b" — (1:02:03 AM)`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRemove_BySeq(t *testing.T) {
	l := NewLog()
	first := l.Append(Added, "a", ts)
	second := l.Append(Deleted, "a", ts)

	if !l.Remove(second.Seq) {
		t.Fatal("expected entry removed")
	}
	if got := l.Entries(); len(got) != 1 || got[0].Seq != first.Seq {
		t.Errorf("expected only first entry left, got %+v", got)
	}
	if l.Remove(second.Seq) {
		t.Error("second removal should report false")
	}
}
