package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"riddl/internal/resolve"
	"riddl/internal/token"
)

const readabilityNote = "A structural keyword that improves readability. These words are optional syntactic sugar."

func (s *Server) handleHover(ctx context.Context, raw json.RawMessage) (*protocol.Hover, error) {
	var params protocol.HoverParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	tokens, ok := s.documentTokens(ctx, string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	line, col := fromPosition(params.Position)
	return buildHover(tokens, s.resolver, line, col), nil
}

func buildHover(tokens []token.Token, resolver resolve.Resolver, line, col int) *protocol.Hover {
	tok, _, ok := resolve.FindTokenAt(tokens, line, col)
	if !ok {
		return nil
	}
	var b strings.Builder
	switch tok.Kind {
	case token.Keyword:
		entry, ok := token.LookupKeyword(tok.Text)
		if !ok {
			return nil
		}
		fmt.Fprintf(&b, "**RIDDL Keyword:** `%s`\n\n%s", tok.Text, entry.Doc)
	case token.Predefined:
		entry, ok := token.LookupPredefined(tok.Text)
		if !ok {
			return nil
		}
		fmt.Fprintf(&b, "**RIDDL Type:** `%s`\n\n%s", tok.Text, entry.Doc)
	case token.Readability:
		fmt.Fprintf(&b, "**Readability Word:** `%s`\n\n", tok.Text)
		if entry, ok := token.LookupReadability(tok.Text); ok {
			b.WriteString(entry.Doc + " ")
		}
		b.WriteString(readabilityNote)
	case token.Identifier:
		fmt.Fprintf(&b, "**Identifier:** `%s`\n\nUser-defined name.", tok.Text)
		if def, ok := resolver.Definition(tokens, tok); ok {
			fmt.Fprintf(&b, " Defined at line %d, column %d.", def.Start.Line+1, def.Start.Col+1)
		}
	default:
		fmt.Fprintf(&b, "**%s:** `%s`\n", tok.Kind, tok.Text)
	}
	fmt.Fprintf(&b, "\n\n---\n\nLine %d, Column %d", tok.Loc.Line, tok.Loc.Col)

	rng := toRange(tok.Range())
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: b.String(),
		},
		Range: &rng,
	}
}
