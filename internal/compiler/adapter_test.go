package compiler

import (
	"context"
	"errors"
	"testing"

	"riddl/internal/token"
)

type fakeService struct {
	tokens    *TokenResult
	valid     *ValidationResult
	err       error
	panicWith any
}

func (f *fakeService) Tokenize(context.Context, string, string) (*TokenResult, error) {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.tokens, f.err
}

func (f *fakeService) Validate(context.Context, string, string, bool) (*ValidationResult, error) {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.valid, f.err
}

func tok(text, kind string, line, col int) Token {
	return Token{Text: text, Kind: kind, Location: Location{Line: line, Col: col}}
}

func TestAdapterTokenize_ConvertsAndOrders(t *testing.T) {
	svc := &fakeService{tokens: &TokenResult{Succeeded: true, Tokens: []Token{
		tok("User", "Identifier", 1, 6),
		tok("type", "Keyword", 1, 1),
		tok("", "Identifier", 1, 12),
		tok("is", "Readability", 0, 11),
		tok("String", "Predefined", 1, 14),
	}}}
	got, err := NewAdapter(svc, nil).Tokenize(context.Background(), "type User is String", "a.riddl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens after dropping malformed ones, got %d", len(got))
	}
	want := []struct {
		text string
		kind token.Kind
	}{
		{"type", token.Keyword},
		{"User", token.Identifier},
		{"String", token.Predefined},
	}
	for i, w := range want {
		if got[i].Text != w.text || got[i].Kind != w.kind {
			t.Fatalf("token %d = %q/%v, want %q/%v", i, got[i].Text, got[i].Kind, w.text, w.kind)
		}
	}
}

func TestAdapterTokenize_Failure(t *testing.T) {
	svc := &fakeService{tokens: &TokenResult{Succeeded: false, Errors: []Message{{Kind: "Error", Message: "bad"}}}}
	_, err := NewAdapter(svc, nil).Tokenize(context.Background(), "x", "a.riddl")
	if !errors.Is(err, ErrServiceFailed) {
		t.Fatalf("expected ErrServiceFailed, got %v", err)
	}
	var se *ServiceError
	if !errors.As(err, &se) || len(se.Messages) != 1 {
		t.Fatalf("expected ServiceError with one message, got %v", err)
	}
}

func TestAdapterTokenize_TransportError(t *testing.T) {
	boom := errors.New("pipe closed")
	_, err := NewAdapter(&fakeService{err: boom}, nil).Tokenize(context.Background(), "x", "a.riddl")
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error to be wrapped, got %v", err)
	}
}

func TestAdapter_RecoversPanics(t *testing.T) {
	a := NewAdapter(&fakeService{panicWith: "kaboom"}, nil)
	if _, err := a.Tokenize(context.Background(), "x", "a.riddl"); err == nil {
		t.Fatalf("expected panic to surface as error")
	}
	_, err := a.Validate(context.Background(), "x", "a.riddl", true)
	var pe *PanicError
	if !errors.As(err, &pe) || pe.Op != "validate" {
		t.Fatalf("expected PanicError from validate, got %v", err)
	}
}

func TestAdapterValidate_NilResult(t *testing.T) {
	_, err := NewAdapter(&fakeService{}, nil).Validate(context.Background(), "x", "a.riddl", true)
	if !errors.Is(err, ErrServiceFailed) {
		t.Fatalf("expected ErrServiceFailed for nil result, got %v", err)
	}
}

func TestConvert_KeepsEndOffset(t *testing.T) {
	end := 9
	raw := []Token{{Text: "Order", Kind: "identifier", Location: Location{Line: 2, Col: 3, Offset: 4, EndOffset: &end}}}
	got, dropped := Convert(raw)
	if dropped != 0 || len(got) != 1 {
		t.Fatalf("unexpected conversion result: %+v dropped=%d", got, dropped)
	}
	if got[0].Loc.EndOffset == nil || *got[0].Loc.EndOffset != 9 {
		t.Fatalf("end offset lost: %+v", got[0].Loc)
	}
}
