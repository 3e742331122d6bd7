package diagfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"riddl/internal/reconcile"
)

func TestBuildDiagnosticsOutput(t *testing.T) {
	exc := reconcile.FromError(errors.New("broken"))
	files := []FileReport{
		{Path: "a.riddl", Records: []reconcile.Record{exc, record(reconcile.SevInformation, "note", 2, 4, 6)}},
		{Path: "b.riddl", Err: errors.New("unreadable")},
	}
	got := BuildDiagnosticsOutput(files, JSONOpts{})
	want := DiagnosticsOutput{
		Diagnostics: []DiagnosticJSON{
			{
				Severity: "ERROR",
				Kind:     reconcile.ExceptionKind,
				Source:   "RIDDL (exception)",
				Message:  "Validation error: broken",
				Location: LocationJSON{File: "a.riddl", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 2},
			},
			{
				Severity: "INFO",
				Source:   "RIDDL (info)",
				Message:  "note",
				Location: LocationJSON{File: "a.riddl", StartLine: 3, StartCol: 5, EndLine: 3, EndCol: 7},
			},
		},
		Errors: []FileErrorJSON{{File: "b.riddl", Error: "unreadable"}},
		Count:  2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_EmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded["diagnostics"]) != "[]" {
		t.Fatalf("diagnostics = %s, want []", decoded["diagnostics"])
	}
}

func TestBuildDiagnosticsOutput_Max(t *testing.T) {
	files := []FileReport{{Path: "a.riddl", Records: []reconcile.Record{
		record(reconcile.SevError, "1", 0, 0, 1),
		record(reconcile.SevError, "2", 0, 1, 2),
	}}}
	if got := BuildDiagnosticsOutput(files, JSONOpts{Max: 1}); got.Count != 1 {
		t.Fatalf("count = %d, want 1", got.Count)
	}
}
