package reconcile

import (
	"golang.org/x/text/cases"
)

// Severity uses the numeric values of LSP DiagnosticSeverity.
type Severity uint8

const (
	// SevError is the default for anything unrecognised.
	SevError Severity = iota + 1
	// SevWarning marks suspicious but valid models.
	SevWarning
	// SevInformation is for notes.
	SevInformation
	// SevHint is the weakest severity.
	SevHint
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "ERROR"
	case SevWarning:
		return "WARNING"
	case SevInformation:
		return "INFO"
	case SevHint:
		return "HINT"
	}
	return "UNKNOWN"
}

// ParseSeverity maps a message kind to a severity ignoring case. Unknown
// kinds are errors.
func ParseSeverity(kind string) Severity {
	switch cases.Fold().String(kind) {
	case "warning", "warn", "stylewarning", "usagewarning", "missingwarning":
		return SevWarning
	case "info", "information", "informational":
		return SevInformation
	case "hint":
		return SevHint
	default:
		return SevError
	}
}

// Phase is the compiler phase that produced a message.
type Phase uint8

const (
	// PhaseSyntax covers lexing and parsing.
	PhaseSyntax Phase = iota
	// PhaseValidation covers semantic checks.
	PhaseValidation
)

func (p Phase) String() string {
	if p == PhaseSyntax {
		return "syntax"
	}
	return "validation"
}
