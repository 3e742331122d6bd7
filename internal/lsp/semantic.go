package lsp

import (
	"context"
	"encoding/json"
	"strings"

	"go.lsp.dev/protocol"

	"riddl/internal/resolve"
	"riddl/internal/source"
	"riddl/internal/token"
)

var semanticTokenTypes = []string{
	"namespace",
	"class",
	"enum",
	"interface",
	"struct",
	"type",
	"parameter",
	"variable",
	"property",
	"function",
	"method",
	"keyword",
	"comment",
	"string",
	"number",
	"operator",
	"macro",
}

var semanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
	"async",
	"modification",
	"documentation",
	"defaultLibrary",
}

const (
	semType      uint32 = 5
	semVariable  uint32 = 7
	semKeyword   uint32 = 11
	semComment   uint32 = 12
	semString    uint32 = 13
	semNumber    uint32 = 14
	semOperator  uint32 = 15
	semMacro     uint32 = 16
	modDeclaring uint32 = 1 << 0
)

func semanticType(k token.Kind) uint32 {
	switch k {
	case token.Keyword:
		return semKeyword
	case token.Identifier:
		return semVariable
	case token.Readability:
		return semMacro
	case token.Punctuation:
		return semOperator
	case token.Predefined:
		return semType
	case token.Comment:
		return semComment
	case token.String:
		return semString
	case token.Number:
		return semNumber
	default:
		return semVariable
	}
}

func (s *Server) handleSemanticTokens(ctx context.Context, raw json.RawMessage) (*protocol.SemanticTokens, error) {
	var params protocol.SemanticTokensParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}
	tokens, _ := s.documentTokens(ctx, string(params.TextDocument.URI))
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(tokens)}, nil
}

// encodeSemanticTokens produces the relative five-integer encoding. Tokens
// spanning several lines are emitted once per line.
func encodeSemanticTokens(tokens []token.Token) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	prevLine, prevCol := 0, 0
	for i, tok := range tokens {
		typ := semanticType(tok.Kind)
		var mods uint32
		if tok.IsResolvable() && resolve.IsDefinition(tokens, i) {
			mods = modDeclaring
		}
		for j, part := range strings.Split(tok.Text, "\n") {
			line, col := tok.Line()+j, 0
			if j == 0 {
				col = tok.Col()
			}
			length := source.UTF16Len(strings.TrimSuffix(part, "\r"))
			if length == 0 {
				continue
			}
			if line < prevLine || line == prevLine && col < prevCol {
				continue
			}
			deltaCol := col
			if line == prevLine {
				deltaCol = col - prevCol
			}
			data = append(data,
				safeUint32(line-prevLine),
				safeUint32(deltaCol),
				safeUint32(length),
				typ,
				mods,
			)
			prevLine, prevCol = line, col
		}
	}
	return data
}
