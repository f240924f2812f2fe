package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestErrorJSONMode(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)
	p.Error(NewConflictError("merge stopped"))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["error"] != "merge stopped" {
		t.Errorf("error = %v", got["error"])
	}
	if got["code"] != float64(ExitConflict) {
		t.Errorf("code = %v, want %d", got["code"], ExitConflict)
	}
}

func TestErrorHumanModeGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)
	p.Error(errors.New("bad ref"))

	if out.Len() != 0 {
		t.Errorf("stdout not empty: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: bad ref") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)
	if err := p.WriteJSON(map[string]int{"files_changed": 3}); err != nil {
		t.Fatal(err)
	}
	var got map[string]int
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["files_changed"] != 3 {
		t.Errorf("files_changed = %d", got["files_changed"])
	}
}

func TestKeyValue(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)
	p.KeyValue("Branch", "main")
	if got := buf.String(); got != "Branch: main\n" {
		t.Errorf("output = %q", got)
	}
}

func TestTableAlignment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)
	p.Table([]string{"NAME", "URL"}, [][]string{
		{"origin", "https://example.com/repo.git"},
		{"fork", "https://example.com/fork.git"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "origin  ") {
		t.Errorf("row = %q, want name column padded", lines[1])
	}
}

func TestDiffPassthroughWhenPiped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)
	text := "diff --git a/x b/x\n+added\n-removed\n"
	p.Diff(text)
	if buf.String() != text {
		t.Errorf("output = %q, want unmodified text", buf.String())
	}
}

func TestWarnJSONMode(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)
	p.Warn("untracked files %d", 2)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["warning"] != "untracked files 2" {
		t.Errorf("warning = %v", got["warning"])
	}
}
