package lsp

import (
	"context"
	"encoding/json"
	"fmt"

	"go.lsp.dev/protocol"

	"riddl/internal/resolve"
	"riddl/internal/token"
)

func (s *Server) handleCompletion(ctx context.Context, raw json.RawMessage) ([]protocol.CompletionItem, error) {
	var params protocol.CompletionParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	tokens, _ := s.documentTokens(ctx, string(params.TextDocument.URI))
	return buildCompletion(tokens), nil
}

// buildCompletion lists the vocabulary followed by the names the document
// defines. Sort prefixes keep keywords first.
func buildCompletion(tokens []token.Token) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(token.Keywords())+len(token.PredefinedTypes())+len(token.ReadabilityWords()))
	for _, e := range token.Keywords() {
		items = append(items, vocabularyItem(e, protocol.CompletionItemKindKeyword, "1_"))
	}
	for _, e := range token.PredefinedTypes() {
		items = append(items, vocabularyItem(e, protocol.CompletionItemKindTypeParameter, "2_"))
	}
	for _, e := range token.ReadabilityWords() {
		item := vocabularyItem(e, protocol.CompletionItemKindKeyword, "3_")
		item.Detail = "Readability word"
		items = append(items, item)
	}

	seen := make(map[string]struct{})
	for _, occ := range resolve.Definitions(tokens) {
		name := occ.Token.Text
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		detail := "Defined in this document"
		if occ.Index > 0 {
			detail = fmt.Sprintf("%s defined at line %d", tokens[occ.Index-1].Text, occ.Token.Loc.Line)
		}
		items = append(items, protocol.CompletionItem{
			Label:    name,
			Kind:     protocol.CompletionItemKindReference,
			Detail:   detail,
			SortText: "4_" + name,
		})
	}
	return items
}

func vocabularyItem(e token.Entry, kind protocol.CompletionItemKind, sortPrefix string) protocol.CompletionItem {
	item := protocol.CompletionItem{
		Label:    e.Word,
		Kind:     kind,
		Detail:   e.Detail,
		SortText: sortPrefix + e.Word,
	}
	if e.Doc != "" {
		item.Documentation = protocol.MarkupContent{Kind: protocol.Markdown, Value: e.Doc}
	}
	if e.Snippet != "" {
		item.InsertText = e.Snippet
		item.InsertTextFormat = protocol.InsertTextFormatSnippet
	}
	return item
}
