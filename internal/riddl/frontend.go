package riddl

import (
	"context"

	"riddl/internal/compiler"
)

// Frontend is the in-process compiler service.
type Frontend struct{}

var _ compiler.Service = Frontend{}

// Tokenize lexes source. Lexical problems are reported alongside the tokens;
// the call only fails when ctx is done.
func (Frontend) Tokenize(ctx context.Context, source, origin string) (*compiler.TokenResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	toks, errs := Lex(source)
	return &compiler.TokenResult{Succeeded: true, Tokens: withSource(toks, origin), Errors: errs}, nil
}

// Validate runs the syntax phase and, when it is clean, the validation phase.
func (Frontend) Validate(ctx context.Context, source, origin string, stripFormatting bool) (*compiler.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	toks, lexErrs := Lex(source)
	syntax := append(lexErrs, checkSyntax(toks, endLocation(source))...)
	if len(syntax) > 0 {
		return &compiler.ValidationResult{Succeeded: false, SyntaxErrors: withOrigin(syntax, origin)}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msgs := validate(toks, stripFormatting)
	msgs.Errors = withOrigin(msgs.Errors, origin)
	msgs.Warnings = withOrigin(msgs.Warnings, origin)
	msgs.Info = withOrigin(msgs.Info, origin)
	return &compiler.ValidationResult{Succeeded: len(msgs.Errors) == 0, Validation: &msgs}, nil
}

func withSource(toks []compiler.Token, origin string) []compiler.Token {
	for i := range toks {
		toks[i].Location.Source = origin
	}
	return toks
}

func withOrigin(msgs []compiler.Message, origin string) []compiler.Message {
	for i := range msgs {
		msgs[i].Location.Source = origin
	}
	return msgs
}
