package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"riddl/internal/reconcile"
	"riddl/internal/source"
)

type palette struct {
	err, warn, info, hint, path, caret, dim *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgBlue, color.Bold),
		hint:  color.New(color.FgCyan),
		path:  color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.hint, p.path, p.caret, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s reconcile.Severity) *color.Color {
	switch s {
	case reconcile.SevError:
		return p.err
	case reconcile.SevWarning:
		return p.warn
	case reconcile.SevInformation:
		return p.info
	default:
		return p.hint
	}
}

// Pretty prints, for each record,
// <path>:<line>:<col>: <SEV> <source>: <message>
// optionally followed by the source line and a ^~~~ underline of its range.
func Pretty(w io.Writer, files []FileReport, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, f := range files {
		if f.Err != nil {
			fmt.Fprintf(w, "%s: %s %v\n", pal.path.Sprint(f.Path), pal.err.Sprint("ERROR"), f.Err)
			continue
		}
		lines := source.NewLines(f.Text)
		records := f.Records
		if opts.Max > 0 && len(records) > opts.Max {
			records = records[:opts.Max]
		}
		for _, rec := range records {
			start := rec.Range.Start
			fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
				pal.path.Sprint(f.Path), start.Line+1, start.Col+1,
				pal.severity(rec.Severity).Sprint(rec.Severity.String()),
				pal.dim.Sprint(rec.Source()),
				rec.Message)
			if opts.Context && start.Line < lines.Count() {
				text := lines.Text(start.Line)
				fmt.Fprintf(w, "  %s\n  %s\n", text, pal.caret.Sprint(underline(text, rec.Range)))
			}
		}
		if n := len(f.Records) - len(records); n > 0 {
			fmt.Fprintf(w, "%s: %d more diagnostics not shown\n", pal.path.Sprint(f.Path), n)
		}
	}
}

// underline builds the marker line for r on text, which is the line r starts
// on. Columns are UTF-16 units; the marker is aligned by display width.
func underline(text string, r source.Range) string {
	endCol := r.End.Col
	if r.End.Line > r.Start.Line {
		endCol = source.UTF16Len(text)
	}
	var b strings.Builder
	units, marked := 0, 0
	for _, ch := range text {
		if units >= endCol {
			break
		}
		width := runewidth.RuneWidth(ch)
		if units < r.Start.Col {
			if ch == '\t' {
				b.WriteByte('\t')
			} else {
				b.WriteString(strings.Repeat(" ", width))
			}
		} else {
			for range max(width, 1) {
				if marked == 0 {
					b.WriteByte('^')
				} else {
					b.WriteByte('~')
				}
				marked++
			}
		}
		units += utf16.RuneLen(ch)
	}
	if marked == 0 {
		b.WriteByte('^')
	}
	return b.String()
}
