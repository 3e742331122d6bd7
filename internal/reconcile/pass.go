package reconcile

import (
	"go.uber.org/zap"

	"riddl/internal/compiler"
	"riddl/internal/source"
)

// Pass combines the syntax and validation messages of one validate reply
// into a single deduplicated record list: syntax errors first, then
// validation errors, warnings and info.
func Pass(result *compiler.ValidationResult, text string, log *zap.Logger) []Record {
	if result == nil {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	var (
		lines   = source.NewLines(text)
		dedup   = NewDeduper()
		records []Record
	)
	add := func(msgs []compiler.Message, phase Phase, fallback Severity) {
		for _, m := range msgs {
			if dedup.Seen(m) {
				continue
			}
			rec, err := Reconcile(m, phase, fallback, lines)
			if err != nil {
				log.Warn("dropping diagnostic",
					zap.String("phase", phase.String()),
					zap.Int("line", m.Location.Line),
					zap.Int("col", m.Location.Col),
					zap.Error(err))
				continue
			}
			records = append(records, rec)
		}
	}
	add(result.SyntaxErrors, PhaseSyntax, SevError)
	if v := result.Validation; v != nil {
		add(v.Errors, PhaseValidation, SevError)
		add(v.Warnings, PhaseValidation, SevWarning)
		add(v.Info, PhaseValidation, SevInformation)
	}
	return records
}
