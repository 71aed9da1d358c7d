package commands

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTaskNum(t *testing.T) {
	index, rest, err := ParseTaskNum([]string{"3", "new", "text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index != 2 {
		t.Errorf("expected index 2, got %d", index)
	}
	if strings.Join(rest, " ") != "new text" {
		t.Errorf("unexpected rest %v", rest)
	}
}

func TestParseTaskNum_Errors(t *testing.T) {
	if _, _, err := ParseTaskNum(nil); !errors.Is(err, ErrTaskNumRequired) {
		t.Errorf("expected ErrTaskNumRequired, got %v", err)
	}
	for _, arg := range []string{"a1", "-1", "1.5", ""} {
		if _, _, err := ParseTaskNum([]string{arg}); err == nil {
			t.Errorf("expected error for %q", arg)
		}
	}
	if _, _, err := ParseTaskNum([]string{"0"}); err == nil || err.Error() != "task number out of range: 0" {
		t.Errorf("unexpected error for 0: %v", err)
	}
}

func TestLinePrompter(t *testing.T) {
	var errOut strings.Builder
	p := newLinePrompter(strings.NewReader("yes\nn\n"), &errOut, false)
	if !p.Confirm("Delete?") {
		t.Error("expected yes")
	}
	if p.Confirm("Delete?") {
		t.Error("expected no")
	}
	if p.Confirm("Delete?") {
		t.Error("EOF should mean no")
	}
	p.Notice("Something")
	if !strings.HasSuffix(errOut.String(), "error: Something\n") {
		t.Errorf("unexpected output %q", errOut.String())
	}

	auto := newLinePrompter(nil, &errOut, true)
	if !auto.Confirm("Delete?") {
		t.Error("--yes should confirm without reading")
	}
}
