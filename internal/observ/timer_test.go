package observ

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimer_Report(t *testing.T) {
	timer := NewTimer()
	timer.now = fakeClock(2 * time.Millisecond)

	idx := timer.Begin("config")
	timer.End(idx, "")
	_ = timer.Track("validate", func() error { return errors.New("boom") })
	timer.End(99, "ignored")

	want := Report{
		TotalMS: 4,
		Phases: []PhaseReport{
			{Name: "config", DurationMS: 2},
			{Name: "validate", DurationMS: 2, Note: "failed"},
		},
	}
	if diff := cmp.Diff(want, timer.Report()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}

	summary := timer.Summary()
	for _, line := range []string{"timings:", "config", "validate", "// failed", "total"} {
		if !strings.Contains(summary, line) {
			t.Fatalf("summary is missing %q:\n%s", line, summary)
		}
	}
}

func TestTimer_Empty(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}
