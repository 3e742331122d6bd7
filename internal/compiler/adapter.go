package compiler

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"riddl/internal/token"
)

// Adapter turns service replies into typed token streams.
type Adapter struct {
	svc Service
	log *zap.Logger
}

// NewAdapter wraps svc. A nil logger discards output.
func NewAdapter(svc Service, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{svc: svc, log: log}
}

// Service returns the wrapped service.
func (a *Adapter) Service() Service { return a.svc }

// Tokenize asks the service for the token stream of text. Malformed records
// are dropped; the rest are returned in document order.
func (a *Adapter) Tokenize(ctx context.Context, text, origin string) (tokens []token.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens, err = nil, &PanicError{Op: "tokenize", Value: r}
		}
	}()
	res, err := a.svc.Tokenize(ctx, text, origin)
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", origin, err)
	}
	if res == nil || !res.Succeeded {
		var msgs []Message
		if res != nil {
			msgs = res.Errors
		}
		return nil, &ServiceError{Op: "tokenize", Messages: msgs}
	}
	tokens, dropped := Convert(res.Tokens)
	if dropped > 0 {
		a.log.Debug("dropped malformed tokens",
			zap.String("origin", origin),
			zap.Int("dropped", dropped))
	}
	return tokens, nil
}

// Validate calls the service, converting a panic into an error.
func (a *Adapter) Validate(ctx context.Context, text, origin string, stripFormatting bool) (res *ValidationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, &PanicError{Op: "validate", Value: r}
		}
	}()
	res, err = a.svc.Validate(ctx, text, origin, stripFormatting)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", origin, err)
	}
	if res == nil {
		return nil, &ServiceError{Op: "validate"}
	}
	return res, nil
}

// Convert maps raw token records to tokens, returning how many were dropped.
func Convert(raw []Token) ([]token.Token, int) {
	out := make([]token.Token, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		if r.Text == "" || r.Location.Line < 1 || r.Location.Col < 1 {
			dropped++
			continue
		}
		out = append(out, token.Token{
			Text: r.Text,
			Kind: token.ParseKind(r.Kind),
			Loc: token.Location{
				Line:      r.Location.Line,
				Col:       r.Location.Col,
				Offset:    r.Location.Offset,
				EndOffset: r.Location.EndOffset,
			},
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Loc.Line != out[j].Loc.Line {
			return out[i].Loc.Line < out[j].Loc.Line
		}
		return out[i].Loc.Col < out[j].Loc.Col
	})
	return out, dropped
}
