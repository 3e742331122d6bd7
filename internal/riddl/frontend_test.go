package riddl

import (
	"context"
	"strings"
	"testing"
)

func TestValidate_UnterminatedBlock(t *testing.T) {
	res, err := Frontend{}.Validate(context.Background(), "domain BadDomain is { ???", "bad.riddl", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded {
		t.Fatalf("expected failure")
	}
	if len(res.SyntaxErrors) != 1 {
		t.Fatalf("expected one syntax error, got %+v", res.SyntaxErrors)
	}
	e := res.SyntaxErrors[0]
	if e.Location.Line != 1 || e.Location.Col != 26 {
		t.Fatalf("expected the error at end of input, got %+v", e.Location)
	}
	if !strings.Contains(e.Message, "Expected '}'") {
		t.Fatalf("unexpected message %q", e.Message)
	}
	if res.Validation != nil {
		t.Fatalf("validation must not run after syntax errors")
	}
}

func TestValidate_BracketMismatch(t *testing.T) {
	res, _ := Frontend{}.Validate(context.Background(), "domain A is { type B is Id(C] }", "x.riddl", true)
	if len(res.SyntaxErrors) == 0 {
		t.Fatalf("expected syntax errors")
	}
	if got := res.SyntaxErrors[0].Message; got != "Expected ')' but found ']'" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestValidate_MissingContainerName(t *testing.T) {
	res, _ := Frontend{}.Validate(context.Background(), "domain is { ??? }", "x.riddl", true)
	if len(res.SyntaxErrors) != 1 {
		t.Fatalf("expected one syntax error, got %+v", res.SyntaxErrors)
	}
	e := res.SyntaxErrors[0]
	if e.Location.Col != 8 || e.Location.EndOffset == nil {
		t.Fatalf("expected error at the offending token with an end offset, got %+v", e.Location)
	}
}

func TestValidate_DuplicatesAndEmpty(t *testing.T) {
	src := strings.Join([]string{
		"domain Shop is {",
		"  type Sku is String",
		"  type Sku is UUID",
		"  context cart is { ??? }",
		"}",
	}, "\n")
	res, err := Frontend{}.Validate(context.Background(), src, "shop.riddl", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded || res.Validation == nil {
		t.Fatalf("expected validation failure, got %+v", res)
	}
	v := res.Validation
	if len(v.Errors) != 1 || v.Errors[0].Message != "Type 'Sku' is defined more than once; the first definition is at line 2" {
		t.Fatalf("unexpected errors: %+v", v.Errors)
	}
	if v.Errors[0].Location.Line != 3 || v.Errors[0].Location.Col != 3 {
		t.Fatalf("duplicate must be reported at its keyword: %+v", v.Errors[0].Location)
	}
	if len(v.Warnings) != 1 || v.Warnings[0].Message != "Context 'cart' should start with an upper case letter" {
		t.Fatalf("unexpected warnings: %+v", v.Warnings)
	}
	if len(v.Info) != 1 || v.Info[0].Message != "Context 'cart' is empty" {
		t.Fatalf("unexpected info: %+v", v.Info)
	}
}

func TestValidate_SameNameInSiblingScopes(t *testing.T) {
	src := "domain A is {\n  context B is { type Id2 is String }\n  context C is { type Id2 is String }\n}"
	res, _ := Frontend{}.Validate(context.Background(), src, "x.riddl", true)
	if !res.Succeeded {
		t.Fatalf("sibling definitions must not clash: %+v", res.Validation)
	}
}

func TestValidate_Formatting(t *testing.T) {
	src := "type A is String\ntype A is String"
	res, _ := Frontend{}.Validate(context.Background(), src, "x.riddl", false)
	if msg := res.Validation.Errors[0].Message; !strings.Contains(msg, "\x1b[") {
		t.Fatalf("expected ANSI sequences in %q", msg)
	}
	res, _ = Frontend{}.Validate(context.Background(), src, "x.riddl", true)
	if msg := res.Validation.Errors[0].Message; strings.Contains(msg, "\x1b[") {
		t.Fatalf("expected plain text, got %q", msg)
	}
}

func TestFrontend_EmptyDocument(t *testing.T) {
	tr, err := Frontend{}.Tokenize(context.Background(), "", "empty.riddl")
	if err != nil || !tr.Succeeded || len(tr.Tokens) != 0 {
		t.Fatalf("unexpected tokenize result: %+v %v", tr, err)
	}
	vr, err := Frontend{}.Validate(context.Background(), "", "empty.riddl", true)
	if err != nil || !vr.Succeeded || len(vr.SyntaxErrors) != 0 {
		t.Fatalf("unexpected validate result: %+v %v", vr, err)
	}
	if v := vr.Validation; len(v.Errors)+len(v.Warnings)+len(v.Info) != 0 {
		t.Fatalf("expected no messages, got %+v", v)
	}
}

func TestFrontend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Frontend{}).Validate(ctx, "type A is String", "x.riddl", true); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestTokenize_RecordsOrigin(t *testing.T) {
	tr, _ := Frontend{}.Tokenize(context.Background(), "type A is String", "a.riddl")
	for _, tok := range tr.Tokens {
		if tok.Location.Source != "a.riddl" {
			t.Fatalf("token %q lost its origin", tok.Text)
		}
	}
}
