package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func newTestRegistry() *Registry {
	n := 0
	r := NewRegistry()
	r.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return r
}

func TestAdd_TrimsAndAppends(t *testing.T) {
	r := newTestRegistry()
	rec, err := r.Add("  Buy license  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Text != "Buy license" || rec.Done {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.ID != "id-1" {
		t.Errorf("expected id-1, got %q", rec.ID)
	}
	if _, err := r.Add("Renew cert"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", r.Len())
	}
	last, _ := r.At(1)
	if last.Text != "Renew cert" {
		t.Errorf("expected append at end, got %+v", last)
	}
}

func TestAdd_EmptyRejected(t *testing.T) {
	r := newTestRegistry()
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := r.Add(text); !errors.Is(err, ErrEmptyText) {
			t.Errorf("Add(%q): expected ErrEmptyText, got %v", text, err)
		}
	}
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

func TestEdit(t *testing.T) {
	r := newTestRegistry()
	r.Add("Buy license")

	old, changed, err := r.Edit(0, " Buy two licenses ")
	if err != nil || !changed || old != "Buy license" {
		t.Fatalf("unexpected result old=%q changed=%v err=%v", old, changed, err)
	}
	rec, _ := r.At(0)
	if rec.Text != "Buy two licenses" {
		t.Errorf("expected new text, got %q", rec.Text)
	}
}

func TestEdit_UnchangedIsNoop(t *testing.T) {
	r := newTestRegistry()
	r.Add("Buy license")
	_, changed, err := r.Edit(0, "Buy license  ")
	if err != nil || changed {
		t.Errorf("expected silent no-op, got changed=%v err=%v", changed, err)
	}
}

func TestEdit_EmptyKeepsPriorText(t *testing.T) {
	r := newTestRegistry()
	r.Add("Buy license")
	old, changed, err := r.Edit(0, "  ")
	if !errors.Is(err, ErrEmptyText) || changed || old != "Buy license" {
		t.Errorf("unexpected result old=%q changed=%v err=%v", old, changed, err)
	}
	rec, _ := r.At(0)
	if rec.Text != "Buy license" {
		t.Errorf("text should be unchanged, got %q", rec.Text)
	}
}

func TestEdit_DoneRejected(t *testing.T) {
	r := newTestRegistry()
	r.Add("Renew cert")
	r.Toggle(0)
	_, _, err := r.Edit(0, "Renew certs")
	if !errors.Is(err, ErrTaskDone) {
		t.Fatalf("expected ErrTaskDone, got %v", err)
	}
	rec, _ := r.At(0)
	if rec.Text != "Renew cert" || !rec.Done {
		t.Errorf("record should be unchanged, got %+v", rec)
	}
}

func TestEdit_OutOfRange(t *testing.T) {
	r := newTestRegistry()
	_, _, err := r.Edit(3, "x")
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err.Error() != "task number out of range: 4" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestToggle_TwiceRestores(t *testing.T) {
	r := newTestRegistry()
	r.Add("Renew cert")
	rec, err := r.Toggle(0)
	if err != nil || !rec.Done {
		t.Fatalf("expected done, got %+v err=%v", rec, err)
	}
	rec, err = r.Toggle(0)
	if err != nil || rec.Done {
		t.Fatalf("expected open again, got %+v err=%v", rec, err)
	}
}

func TestRemoveID_SurvivesIndexShift(t *testing.T) {
	r := newTestRegistry()
	a, _ := r.Add("a")
	b, _ := r.Add("b")
	r.Add("c")

	if _, err := r.RemoveID(a.ID); err != nil {
		t.Fatalf("RemoveID: %v", err)
	}
	if i := r.Index(b.ID); i != 0 {
		t.Errorf("expected b at 0 after removal, got %d", i)
	}
	if _, err := r.RemoveID(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second removal, got %v", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	r := newTestRegistry()
	r.Add("a")
	snap := r.Snapshot()
	r.Add("b")
	r.Toggle(0)

	r.Restore(snap)
	if r.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", r.Len())
	}
	rec, _ := r.At(0)
	if rec.Text != "a" || rec.Done || rec.ID != "id-1" {
		t.Errorf("unexpected record after restore %+v", rec)
	}
}

func TestRestore_AssignsIDsAndDropsEmpty(t *testing.T) {
	r := newTestRegistry()
	r.Restore([]Record{{Text: "a"}, {Text: "  "}, {Text: "b", Done: true}})
	if r.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", r.Len())
	}
	for _, rec := range r.Records() {
		if rec.ID == "" {
			t.Errorf("record without id: %+v", rec)
		}
	}
}

func TestRecord_StoredShape(t *testing.T) {
	data, err := json.Marshal(Record{ID: "x", Text: "Buy license"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"text":"Buy license","done":false}` {
		t.Errorf("unexpected stored shape %s", data)
	}
}
