package reconcile

import "riddl/internal/source"

// ExceptionKind is the kind of the record synthesised when the validate
// call itself fails.
const ExceptionKind = "validation-exception"

// Record is a diagnostic ready for display.
type Record struct {
	Severity Severity
	Kind     string
	Message  string
	Phase    Phase
	Range    source.Range
}

// Source names the producer of the record for display.
func (r Record) Source() string {
	switch {
	case r.Kind == ExceptionKind:
		return "RIDDL (exception)"
	case r.Phase == PhaseSyntax:
		return "RIDDL (syntax)"
	case r.Severity == SevInformation:
		return "RIDDL (info)"
	default:
		return "RIDDL (validation)"
	}
}

// FromError builds the single record shown when validation could not run.
func FromError(err error) Record {
	return Record{
		Severity: SevError,
		Kind:     ExceptionKind,
		Message:  "Validation error: " + StripFormatting(err.Error()),
		Phase:    PhaseValidation,
		Range:    source.PointRange(0, 0, 1),
	}
}

// HasErrors reports whether any record is an error.
func HasErrors(records []Record) bool {
	for _, r := range records {
		if r.Severity == SevError {
			return true
		}
	}
	return false
}
