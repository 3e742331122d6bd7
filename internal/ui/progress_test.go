package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"riddl/internal/pipeline"
)

func TestProgressModel_TracksFiles(t *testing.T) {
	events := make(chan pipeline.Event)
	m := NewProgressModel("validating", []string{"a.riddl", "b.riddl"}, events).(*progressModel)

	m.Update(eventMsg{File: "a.riddl", Stage: pipeline.StageValidate, Status: pipeline.StatusWorking})
	m.Update(eventMsg{File: "b.riddl", Stage: pipeline.StageReconcile, Status: pipeline.StatusError})
	m.Update(eventMsg{File: "unknown.riddl", Stage: pipeline.StageRead, Status: pipeline.StatusDone})

	if got := m.items[0].status; got != "validating" {
		t.Fatalf("a.riddl status = %q", got)
	}
	if got := m.items[1].status; got != labelError {
		t.Fatalf("b.riddl status = %q", got)
	}
	if got := m.finished(); got != 1 {
		t.Fatalf("finished = %d, want 1", got)
	}
	if got := m.percent(); math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("percent = %v, want 0.7", got)
	}
	view := m.View()
	for _, want := range []string{"(1/2)", "a.riddl", "b.riddl", "validating"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view is missing %q:\n%s", want, view)
		}
	}
}

func TestProgressModel_QuitsWhenEventsClose(t *testing.T) {
	events := make(chan pipeline.Event)
	close(events)
	m := NewProgressModel("validating", []string{"a.riddl"}, events).(*progressModel)

	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg, got %T", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil || !m.done {
		t.Fatalf("expected the model to finish")
	}
	if !strings.Contains(m.View(), "done:") {
		t.Fatalf("expected a done header:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"averyverylongname.riddl", 10, "averyve..."},
		{"日本語のファイル.riddl", 9, "日本語..."},
		{"abcdef", 2, "ab"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if tt.width > 0 && runewidth.StringWidth(got) > tt.width {
			t.Errorf("truncate(%q, %d) is %d columns wide", tt.in, tt.width, runewidth.StringWidth(got))
		}
	}
}
