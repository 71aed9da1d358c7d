package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"itdash/internal/store"
)

func TestStore_PutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get(store.Tasks); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Put(store.Tasks, []byte(`[{"text":"a","done":false}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data, ok, err := s.Get(store.Tasks)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(data) != `[{"text":"a","done":false}]` {
		t.Errorf("unexpected data %q", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "tasks.json")); err != nil {
		t.Errorf("expected tasks.json on disk: %v", err)
	}
}

func TestStore_PutReplacesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Put(store.History, []byte(`["one"]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(store.History, []byte(`["two"]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data, _, _ := s.Get(store.History)
	if string(data) != `["two"]` {
		t.Errorf("expected replaced value, got %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "history.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only history.json, got %v", names)
	}
}

func TestStore_InvalidKey(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Put("../escape", []byte("x")); err == nil {
		t.Error("expected error for path-like key")
	}
	if _, _, err := s.Get("../escape"); err == nil {
		t.Error("expected error for path-like key")
	}
}

func TestStore_LoadCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out []map[string]any
	if store.Load(s, store.Tasks, &out) {
		t.Fatal("expected Load to report no data")
	}
}
