package lsp

import (
	"strings"
	"testing"

	"go.lsp.dev/protocol"

	"riddl/internal/resolve"
)

const hoverDoc = "domain Shop is {\n  type Sku is String\n  entity Basket is { state Items of Sku }\n}"

func TestHover_Keyword(t *testing.T) {
	h := buildHover(lex(t, hoverDoc), resolve.Heuristic{}, 0, 3)
	if h == nil {
		t.Fatal("expected hover")
	}
	if !strings.HasPrefix(h.Contents.Value, "**RIDDL Keyword:** `domain`\n\nTop-level container") {
		t.Fatalf("unexpected content: %q", h.Contents.Value)
	}
	if !strings.HasSuffix(h.Contents.Value, "Line 1, Column 1") {
		t.Fatalf("missing location footer: %q", h.Contents.Value)
	}
	want := protocol.Range{End: protocol.Position{Character: 6}}
	if h.Range == nil || *h.Range != want {
		t.Fatalf("hover range = %+v", h.Range)
	}
	if h.Contents.Kind != protocol.Markdown {
		t.Fatalf("expected markdown, got %q", h.Contents.Kind)
	}
}

func TestHover_PredefinedAndReadability(t *testing.T) {
	tokens := lex(t, hoverDoc)
	pre := buildHover(tokens, resolve.Heuristic{}, 1, 15)
	if pre == nil || !strings.Contains(pre.Contents.Value, "**RIDDL Type:** `String`") {
		t.Fatalf("unexpected predefined hover: %+v", pre)
	}
	read := buildHover(tokens, resolve.Heuristic{}, 1, 11)
	if read == nil || !strings.Contains(read.Contents.Value, "**Readability Word:** `is`") {
		t.Fatalf("unexpected readability hover: %+v", read)
	}
	if !strings.Contains(read.Contents.Value, readabilityNote) {
		t.Fatalf("readability hover misses the common note: %q", read.Contents.Value)
	}
}

func TestHover_IdentifierShowsDefinition(t *testing.T) {
	// "Sku" used in "of Sku" on the third line.
	h := buildHover(lex(t, hoverDoc), resolve.Heuristic{}, 2, 36)
	if h == nil {
		t.Fatal("expected hover")
	}
	if !strings.Contains(h.Contents.Value, "**Identifier:** `Sku`") {
		t.Fatalf("unexpected content: %q", h.Contents.Value)
	}
	if !strings.Contains(h.Contents.Value, "Defined at line 2, column 8.") {
		t.Fatalf("missing definition line: %q", h.Contents.Value)
	}
}

func TestHover_Punctuation(t *testing.T) {
	h := buildHover(lex(t, hoverDoc), resolve.Heuristic{}, 0, 15)
	if h == nil || !strings.HasPrefix(h.Contents.Value, "**Punctuation:** `{`") {
		t.Fatalf("unexpected punctuation hover: %+v", h)
	}
}

func TestHover_NoToken(t *testing.T) {
	if h := buildHover(lex(t, hoverDoc), resolve.Heuristic{}, 0, 200); h != nil {
		t.Fatalf("expected no hover, got %+v", h)
	}
	if h := buildHover(nil, resolve.Heuristic{}, 0, 0); h != nil {
		t.Fatalf("expected no hover on an empty document, got %+v", h)
	}
}

func TestHover_ClosedDocument(t *testing.T) {
	s, _ := newTestServer(t, ServerOptions{})
	got := call(t, s, "textDocument/hover", protocol.HoverParams{TextDocumentPositionParams: positionParams(testURI, 0, 0)})
	if h, ok := got.(*protocol.Hover); !ok || h != nil {
		t.Fatalf("expected a nil hover, got %#v", got)
	}
}
