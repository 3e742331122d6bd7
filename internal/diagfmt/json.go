package diagfmt

import (
	"encoding/json"
	"io"

	"riddl/internal/reconcile"
)

// LocationJSON is a 1-based position range.
type LocationJSON struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
}

// DiagnosticJSON is one record in JSON output.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Kind     string       `json:"kind,omitempty"`
	Source   string       `json:"source"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FileErrorJSON reports a file that could not be validated.
type FileErrorJSON struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// DiagnosticsOutput is the root of JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      []FileErrorJSON  `json:"errors,omitempty"`
	Count       int              `json:"count"`
}

func makeDiagnostic(path string, rec reconcile.Record) DiagnosticJSON {
	return DiagnosticJSON{
		Severity: rec.Severity.String(),
		Kind:     rec.Kind,
		Source:   rec.Source(),
		Message:  rec.Message,
		Location: LocationJSON{
			File:      path,
			StartLine: rec.Range.Start.Line + 1,
			StartCol:  rec.Range.Start.Col + 1,
			EndLine:   rec.Range.End.Line + 1,
			EndCol:    rec.Range.End.Col + 1,
		},
	}
}

// BuildDiagnosticsOutput assembles the JSON document without encoding it.
func BuildDiagnosticsOutput(files []FileReport, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	for _, f := range files {
		if f.Err != nil {
			out.Errors = append(out.Errors, FileErrorJSON{File: f.Path, Error: f.Err.Error()})
			continue
		}
		records := f.Records
		if opts.Max > 0 && len(records) > opts.Max {
			records = records[:opts.Max]
		}
		for _, rec := range records {
			out.Diagnostics = append(out.Diagnostics, makeDiagnostic(f.Path, rec))
		}
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes files as an indented JSON document.
func JSON(w io.Writer, files []FileReport, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(files, opts))
}
