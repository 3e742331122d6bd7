// Package compiler describes the external RIDDL compiler service and adapts
// its token stream for the editor layer.
package compiler

import "context"

// Location is a 1-based source position reported by the service.
type Location struct {
	Line      int    `json:"line" msgpack:"line"`
	Col       int    `json:"col" msgpack:"col"`
	Offset    int    `json:"offset" msgpack:"offset"`
	EndOffset *int   `json:"endOffset,omitempty" msgpack:"end_offset,omitempty"`
	Source    string `json:"source,omitempty" msgpack:"source,omitempty"`
}

// Token is a raw token record.
type Token struct {
	Text     string   `json:"text" msgpack:"text"`
	Kind     string   `json:"kind" msgpack:"kind"`
	Location Location `json:"location" msgpack:"location"`
}

// Message is one raw diagnostic.
type Message struct {
	Kind     string   `json:"kind" msgpack:"kind"`
	Message  string   `json:"message" msgpack:"message"`
	Location Location `json:"location" msgpack:"location"`
}

// TokenResult is the reply to a tokenize call.
type TokenResult struct {
	Succeeded bool      `json:"succeeded" msgpack:"succeeded"`
	Tokens    []Token   `json:"tokens,omitempty" msgpack:"tokens,omitempty"`
	Errors    []Message `json:"errors,omitempty" msgpack:"errors,omitempty"`
}

// ValidationMessages groups the messages of the validation phase.
type ValidationMessages struct {
	Errors   []Message `json:"errors,omitempty" msgpack:"errors,omitempty"`
	Warnings []Message `json:"warnings,omitempty" msgpack:"warnings,omitempty"`
	Info     []Message `json:"info,omitempty" msgpack:"info,omitempty"`
}

// ValidationResult is the reply to a validate call. Validation is nil when
// the service never reached the validation phase.
type ValidationResult struct {
	Succeeded    bool                `json:"succeeded" msgpack:"succeeded"`
	SyntaxErrors []Message           `json:"syntaxErrors,omitempty" msgpack:"syntax_errors,omitempty"`
	Validation   *ValidationMessages `json:"validation,omitempty" msgpack:"validation,omitempty"`
}

// Service is the RIDDL compiler as seen by the editor layer. Implementations
// must be pure functions of their inputs.
type Service interface {
	Tokenize(ctx context.Context, source, origin string) (*TokenResult, error)
	Validate(ctx context.Context, source, origin string, stripFormatting bool) (*ValidationResult, error)
}
