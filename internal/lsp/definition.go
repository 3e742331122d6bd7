package lsp

import (
	"context"
	"encoding/json"

	"go.lsp.dev/protocol"

	"riddl/internal/resolve"
)

func (s *Server) handleDefinition(ctx context.Context, raw json.RawMessage) ([]protocol.Location, error) {
	var params protocol.DefinitionParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	uri := params.TextDocument.URI
	tokens, ok := s.documentTokens(ctx, string(uri))
	if !ok {
		return []protocol.Location{}, nil
	}
	line, col := fromPosition(params.Position)
	tok, _, ok := resolve.FindTokenAt(tokens, line, col)
	if !ok {
		return []protocol.Location{}, nil
	}
	def, ok := s.resolver.Definition(tokens, tok)
	if !ok {
		return []protocol.Location{}, nil
	}
	return []protocol.Location{{URI: uri, Range: toRange(def)}}, nil
}

func (s *Server) handleReferences(ctx context.Context, raw json.RawMessage) ([]protocol.Location, error) {
	var params protocol.ReferenceParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	uri := params.TextDocument.URI
	locations := []protocol.Location{}
	tokens, ok := s.documentTokens(ctx, string(uri))
	if !ok {
		return locations, nil
	}
	line, col := fromPosition(params.Position)
	tok, _, ok := resolve.FindTokenAt(tokens, line, col)
	if !ok {
		return locations, nil
	}
	for _, r := range s.resolver.References(tokens, tok, params.Context.IncludeDeclaration) {
		locations = append(locations, protocol.Location{URI: uri, Range: toRange(r)})
	}
	return locations, nil
}
